package services

import (
	portsrepo "github.com/gridlined/Itemizer/internal/core/ports/repositories"
	portssvc "github.com/gridlined/Itemizer/internal/core/ports/services"
	"github.com/gridlined/Itemizer/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Supplier = NewSupplierService(repos.SupplierRepo)
	container.Tax = NewTaxService(repos.TaxRepo)
	container.ProductType = NewProductTypeService(repos.ProductTypeRepo)
	container.Product = NewProductService(repos.ProductRepo, repos.ProductTypeRepo)
	container.PaymentMethodType = NewPaymentMethodTypeService(repos.PaymentMethodTypeRepo)
	container.PaymentMethod = NewPaymentMethodService(repos.PaymentMethodRepo, repos.PaymentMethodTypeRepo)
	container.Receipt = NewReceiptService(
		repos.ReceiptRepo,
		repos.SupplierRepo,
		repos.ProductRepo,
		repos.TaxRepo,
		repos.PaymentMethodRepo,
	)
	container.Reporting = NewReportingService(repos.ReceiptRepo)

	return container
}

// Compile-time interface implementation checks
var (
	_ portssvc.SupplierSvcFacade      = (*supplierService)(nil)
	_ portssvc.TaxSvcFacade           = (*taxService)(nil)
	_ portssvc.ProductSvcFacade       = (*productService)(nil)
	_ portssvc.PaymentMethodSvcFacade = (*paymentMethodService)(nil)
	_ portssvc.ReceiptSvcFacade       = (*receiptService)(nil)
	_ portssvc.ReportingService       = (*reportingService)(nil)
)
