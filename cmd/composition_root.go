package cmd

import (
	"log/slog"

	"barbari/internal/adapters/out/notifier"
	"barbari/internal/adapters/out/postgres"
	"barbari/internal/core/application/usecases/commands"
	"barbari/internal/core/application/usecases/queries"
	"barbari/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.Notifier
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notifier.NewGormNotifier(gormDB, logger),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateSetOrderStatusCommandHandler() commands.SetOrderStatusCommandHandler {
	var f commands.LifecycleUoWFactory = FuncLifecycleUoWFactory(func() commands.LifecycleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetOrderStatusCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	var f commands.LifecycleUoWFactory = FuncLifecycleUoWFactory(func() commands.LifecycleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDriverCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.LifecycleUoWFactory = FuncLifecycleUoWFactory(func() commands.LifecycleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateRateOrderCommandHandler() commands.RateOrderCommandHandler {
	var f commands.RatingUoWFactory = FuncRatingUoWFactory(func() commands.RatingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateDriverCommandHandler() commands.CreateDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateCreatePricingConfigurationCommandHandler() commands.CreatePricingConfigurationCommandHandler {
	var f commands.PricingUoWFactory = FuncPricingUoWFactory(func() commands.PricingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePricingConfigurationCommandHandler(f)
}

func (c *CompositionRoot) CreateActivatePricingConfigurationCommandHandler() commands.ActivatePricingConfigurationCommandHandler {
	var f commands.PricingUoWFactory = FuncPricingUoWFactory(func() commands.PricingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewActivatePricingConfigurationCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateDiscountCodeCommandHandler() commands.CreateDiscountCodeCommandHandler {
	var f commands.DiscountUoWFactory = FuncDiscountUoWFactory(func() commands.DiscountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDiscountCodeCommandHandler(f)
}

func (c *CompositionRoot) CreateCalculatePriceQueryHandler() queries.CalculatePriceQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewCalculatePriceQueryHandler(uow.PricingRepository(), uow.DiscountRepository())
}

func (c *CompositionRoot) CreateValidateDiscountQueryHandler() queries.ValidateDiscountQueryHandler {
	return queries.NewValidateDiscountQueryHandler(c.uowFactory.Create().DiscountRepository())
}

func (c *CompositionRoot) CreateGetActivePricingConfigQueryHandler() queries.GetActivePricingConfigQueryHandler {
	return queries.NewGetActivePricingConfigQueryHandler(c.uowFactory.Create().PricingRepository())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobDiscountRepository() ports.DiscountRepository {
	return c.uowFactory.Create().DiscountRepository()
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncLifecycleUoWFactory func() commands.LifecycleUoW

func (f FuncLifecycleUoWFactory) Create() commands.LifecycleUoW {
	return f()
}

type FuncRatingUoWFactory func() commands.RatingUoW

func (f FuncRatingUoWFactory) Create() commands.RatingUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncPricingUoWFactory func() commands.PricingUoW

func (f FuncPricingUoWFactory) Create() commands.PricingUoW {
	return f()
}

type FuncDiscountUoWFactory func() commands.DiscountUoW

func (f FuncDiscountUoWFactory) Create() commands.DiscountUoW {
	return f()
}
