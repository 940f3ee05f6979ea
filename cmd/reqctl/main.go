// cmd/reqctl/main.go
package main

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/procurehq/reqflow/internal/migrate"
	"github.com/spf13/cobra"
)

const version = "0.3.0"

var (
	dbConnString string
	verbose      bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbConnString, "db", "d", "", "Database connection string")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(rlsCmd)
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "reqctl",
	Short: "reqctl manages the reqflow database",
	Long:  `reqctl initializes the reqflow schema and manages its row-level security policies.`,
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the database schema",
	Long:  `Create the reqflow tables, enum types, and indexes.`,
	Run: func(cmd *cobra.Command, args []string) {
		db := openDB()
		defer db.Close()

		migrator := migrate.NewMigrator(db)
		if err := migrator.InitializeSchema(); err != nil {
			log.Fatalf("Failed to initialize schema: %v", err)
		}

		fmt.Println("Schema initialized successfully")
	},
}

var rlsCmd = &cobra.Command{
	Use:   "rls",
	Short: "Enable row-level security policies",
	Long:  `Enable row-level security on every tenant-scoped table and install the organization isolation policies.`,
	Run: func(cmd *cobra.Command, args []string) {
		db := openDB()
		defer db.Close()

		migrator := migrate.NewMigrator(db)
		if err := migrator.EnableRowLevelSecurity(); err != nil {
			log.Fatalf("Failed to enable row-level security: %v", err)
		}

		fmt.Println("Row-level security enabled")
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the reqctl version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("reqctl version %s\n", version)
	},
}

func openDB() *sql.DB {
	if dbConnString == "" {
		log.Fatal("Database connection string is required")
	}

	db, err := sql.Open("postgres", dbConnString)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	return db
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
