package services

// ServiceContainer bundles the service implementations handed to the handlers.
type ServiceContainer struct {
	Transaction TransactionService
	Branch      BranchService
	Report      ReportService
}
