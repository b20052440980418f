package bootstrap

import (
	"log"

	"startup-companion-be/internal/config"
	"startup-companion-be/internal/controller"
	"startup-companion-be/internal/pkg/logger"
	"startup-companion-be/internal/pkg/mailer"
	"startup-companion-be/internal/repository/unitofwork"
	"startup-companion-be/internal/service"
	"startup-companion-be/pkg/docstore"
	"startup-companion-be/pkg/llm/factory"

	"gorm.io/gorm"
)

type Container struct {
	AuthController     controller.IAuthController
	ProfileController  controller.IProfileController
	AdvisorController  controller.IAdvisorController
	DocumentController controller.IDocumentController
	PublicController   controller.IPublicController
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	store := docstore.NewDiskStore(cfg.Storage.RootDir, cfg.App.BaseURL)

	llmProvider, err := factory.NewLLMProvider(cfg.Ai)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.Provider, cfg.Ai.DefaultChat)

	// 2. Services
	profileLoader := service.NewProfileLoader(uowFactory)

	authService := service.NewAuthService(uowFactory, emailService, sysLogger, cfg.App.JWTSecret)
	userService := service.NewUserService(uowFactory, store, profileLoader, sysLogger)
	advisorService := service.NewAdvisorService(uowFactory, llmProvider, store, profileLoader, sysLogger)
	kitService := service.NewKitService(uowFactory, llmProvider, store, profileLoader, sysLogger, cfg.Ai)
	sessionService := service.NewSessionService(uowFactory, sysLogger)
	documentService := service.NewDocumentService(uowFactory, store, sysLogger)
	publicChatService := service.NewPublicChatService(llmProvider, sysLogger, cfg.Ai)

	// 3. Controllers
	return &Container{
		AuthController:     controller.NewAuthController(authService),
		ProfileController:  controller.NewProfileController(userService),
		AdvisorController:  controller.NewAdvisorController(advisorService, kitService, sessionService),
		DocumentController: controller.NewDocumentController(documentService),
		PublicController:   controller.NewPublicController(publicChatService),
	}
}
