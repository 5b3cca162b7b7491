package cmd

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"fulfillment/internal/adapters/out/geo"
	"fulfillment/internal/adapters/out/kafka"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/jobs"
	"fulfillment/internal/pkg/codes"

	"gorm.io/gorm"
)

const (
	defaultDistanceTimeout     = 5 * time.Second
	defaultConfirmationCodeTTL = 15 * time.Minute
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	logger   *slog.Logger
	pricing  services.PriceCalculator
	assigner services.CarrierAssigner
	codes    *codes.Store

	distance  ports.DistanceClient
	publisher ports.EventPublisher

	trigger           commands.SettlementTrigger
	platformAccountID kernel.UUID
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	percent, err := strconv.Atoi(config.CommissionPercent)
	if err != nil {
		return CompositionRoot{}, err
	}
	pricing, err := services.NewPriceCalculatorFromPercent(percent)
	if err != nil {
		return CompositionRoot{}, err
	}

	platformAccountID, err := kernel.UUIDFromString(config.PlatformAccountID)
	if err != nil {
		return CompositionRoot{}, err
	}

	codeTTL := defaultConfirmationCodeTTL
	if config.ConfirmationCodeTTL != "" {
		if codeTTL, err = time.ParseDuration(config.ConfirmationCodeTTL); err != nil {
			return CompositionRoot{}, err
		}
	}

	root := CompositionRoot{
		gormDB:            gormDB,
		uowFactory:        *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:            logger,
		pricing:           pricing,
		assigner:          services.NewCarrierAssigner(),
		codes:             codes.NewStore(codeTTL),
		trigger:           commands.SettlementTrigger(config.SettlementTrigger),
		platformAccountID: platformAccountID,
	}
	if root.trigger == "" {
		root.trigger = commands.SettleOnCompletion
	}

	// Optional collaborators stay nil interfaces when not configured.
	if config.DistanceServiceURL != "" {
		timeout := defaultDistanceTimeout
		if config.DistanceServiceTimeout != "" {
			if timeout, err = time.ParseDuration(config.DistanceServiceTimeout); err != nil {
				return CompositionRoot{}, err
			}
		}
		root.distance = geo.NewClient(config.DistanceServiceURL, timeout)
	}
	if config.KafkaHost != "" {
		root.publisher = kafka.NewPublisher(config.KafkaHost, config.KafkaOrderChangedTopic, logger)
	}

	return root, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(
		f, c.pricing, c.assigner, c.distance, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	settle := c.CreateSettleOrderCommandHandler()
	return commands.NewAdvanceOrderCommandHandler(
		f, c.codes, c.publisher, &settle, c.trigger, c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.CancelOrderUoWFactory = FuncCancelOrderUoWFactory(func() commands.CancelOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateScanOrderCommandHandler() commands.ScanOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	advance := c.CreateAdvanceOrderCommandHandler()
	return commands.NewScanOrderCommandHandler(f, &advance)
}

func (c *CompositionRoot) CreateReassignCarrierCommandHandler() commands.ReassignCarrierCommandHandler {
	var f commands.ReassignUoWFactory = FuncReassignUoWFactory(func() commands.ReassignUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReassignCarrierCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateRegisterCarrierCommandHandler() commands.RegisterCarrierCommandHandler {
	var f commands.CarrierUoWFactory = FuncCarrierUoWFactory(func() commands.CarrierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterCarrierCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterProductCommandHandler() commands.RegisterProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterProductCommandHandler(f)
}

func (c *CompositionRoot) CreateSettleOrderCommandHandler() commands.SettleOrderCommandHandler {
	var f commands.SettlementUoWFactory = FuncSettlementUoWFactory(func() commands.SettlementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSettleOrderCommandHandler(f, c.platformAccountID, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTrackingQueryHandler() queries.GetTrackingQueryHandler {
	return queries.NewGetTrackingQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCarrierOrdersQueryHandler() queries.GetCarrierOrdersQueryHandler {
	return queries.NewGetCarrierOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLedgerQueryHandler() queries.GetLedgerQueryHandler {
	return queries.NewGetLedgerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	var f commands.SettlementUoWFactory = FuncSettlementUoWFactory(func() commands.SettlementUoW {
		return c.uowFactory.Create()
	})
	settle := c.CreateSettleOrderCommandHandler()
	return jobs.NewJobManager(f, &settle, c.codes, c.trigger, c.logger)
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCancelOrderUoWFactory func() commands.CancelOrderUoW

func (f FuncCancelOrderUoWFactory) Create() commands.CancelOrderUoW {
	return f()
}

type FuncSettlementUoWFactory func() commands.SettlementUoW

func (f FuncSettlementUoWFactory) Create() commands.SettlementUoW {
	return f()
}

type FuncReassignUoWFactory func() commands.ReassignUoW

func (f FuncReassignUoWFactory) Create() commands.ReassignUoW {
	return f()
}

type FuncCarrierUoWFactory func() commands.CarrierUoW

func (f FuncCarrierUoWFactory) Create() commands.CarrierUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}
