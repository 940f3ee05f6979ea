// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./user.go -destination=../mocks/mock_user_repository.go -package=mocks UserRepositoryIface
//go:generate mockgen -source=./organization.go -destination=../mocks/mock_organization_repository.go -package=mocks OrganizationRepositoryIface
//go:generate mockgen -source=./requisition.go -destination=../mocks/mock_requisition_repository.go -package=mocks RequisitionRepositoryIface
//go:generate mockgen -source=./project.go -destination=../mocks/mock_project_repository.go -package=mocks ProjectRepositoryIface
//go:generate mockgen -source=./expense_account.go -destination=../mocks/mock_expense_account_repository.go -package=mocks ExpenseAccountRepositoryIface
//go:generate mockgen -source=./catalog_item.go -destination=../mocks/mock_catalog_item_repository.go -package=mocks CatalogItemRepositoryIface
//go:generate mockgen -source=./template.go -destination=../mocks/mock_template_repository.go -package=mocks TemplateRepositoryIface
//go:generate mockgen -source=./notification.go -destination=../mocks/mock_notification_repository.go -package=mocks NotificationRepositoryIface
//go:generate mockgen -source=./attachment.go -destination=../mocks/mock_attachment_repository.go -package=mocks AttachmentRepositoryIface
