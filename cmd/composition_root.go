package cmd

import (
	"log/slog"

	"atelier/internal/adapters/out/notify"
	"atelier/internal/adapters/out/postgres"
	"atelier/internal/adapters/out/postgres/deliverylog"
	"atelier/internal/adapters/out/postgres/outboxrepo"
	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/ports"
	"atelier/internal/jobs"
	"atelier/internal/notifications"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) workflowUoWFactory() commands.WorkflowUoWFactory {
	return FuncWorkflowUoWFactory(func() commands.WorkflowUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.workflowUoWFactory(), commands.SystemClock)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	return commands.NewTransitionOrderCommandHandler(c.workflowUoWFactory(), commands.SystemClock)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.workflowUoWFactory())
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.workflowUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderStateQueryHandler() queries.GetOrderStateQueryHandler {
	return queries.NewGetOrderStateQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateNotificationChannels() []ports.NotificationChannel {
	return []ports.NotificationChannel{
		notify.NewEmailChannel(c.config.SMTPAddr, c.config.SMTPFrom, c.config.SMTPRecipient, nil),
		notify.NewSMSChannel(c.config.SMSGatewayURL, c.config.SMSAPIKey),
	}
}

func (c *CompositionRoot) CreateDispatcher() *notifications.Dispatcher {
	return notifications.NewDispatcher(
		outboxrepo.NewGormOutboxRepository(c.gormDB),
		deliverylog.NewGormDeliveryLog(c.gormDB),
		c.CreateNotificationChannels(),
		commands.SystemClock,
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateDispatcher(), c.logger)
}

type FuncWorkflowUoWFactory func() commands.WorkflowUoW

func (f FuncWorkflowUoWFactory) Create() commands.WorkflowUoW {
	return f()
}
