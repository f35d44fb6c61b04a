package services

import (
	portsrepo "github.com/safa-edu/branch_transfer_app/internal/core/ports/repositories"
	portssvc "github.com/safa-edu/branch_transfer_app/internal/core/ports/services"
	portsstorage "github.com/safa-edu/branch_transfer_app/internal/core/ports/storage"
	"github.com/safa-edu/branch_transfer_app/internal/render"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, artifacts portsstorage.ArtifactStore) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Transaction = NewTransactionService(repos.TransactionRepo)
	container.Branch = NewBranchService(repos.BranchRepo)
	container.Report = NewReportService(
		repos.TransactionRepo,
		repos.BranchRepo,
		repos.StaffRepo,
		repos.ReportRepo,
		artifacts,
		render.NewRenderer(),
	)

	return container
}
