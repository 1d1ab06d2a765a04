package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/craneintel/crane-intelligence/internal/app"
	"github.com/craneintel/crane-intelligence/internal/domain/admins"
	"github.com/craneintel/crane-intelligence/internal/infrastructure/connector"
	"github.com/craneintel/crane-intelligence/internal/infrastructure/persistence"
	"github.com/craneintel/crane-intelligence/internal/pkg/config"
	"github.com/craneintel/crane-intelligence/internal/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// adminPasswordEnv supplies passwords without putting them on the command line
const adminPasswordEnv = "CRANE_ADMIN_PASSWORD"

// ServiceCommandHandler runs maintenance tasks directly against the service's database and storage
type ServiceCommandHandler struct {
	logger logger.Logger
}

// NewServiceCommandHandler creates a ServiceCommandHandler
func NewServiceCommandHandler() (*ServiceCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return &ServiceCommandHandler{logger: loggerInstance}, nil
}

func (handler *ServiceCommandHandler) openDatabase(cfg *config.RestConfig) (*gorm.DB, error) {
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}
	if err := persistence.Migrate(db); err != nil {
		_ = persistence.CloseDB(db)
		return nil, err
	}
	return db, nil
}

// Pinger checks that a remote dependency answers
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

// CredentialCheck is one line of the verify-credentials report
type CredentialCheck struct {
	Name string
	Err  error
}

// VerifyCredentials checks database connectivity, Spaces bucket access and the webhook secret
func VerifyCredentials(ctx context.Context, cfg *config.RestConfig, database, storage Pinger) []CredentialCheck {
	checks := []CredentialCheck{
		{Name: "database", Err: database.Ping(ctx)},
		{Name: "spaces bucket " + cfg.Spaces.Bucket, Err: storage.Ping(ctx)},
	}

	var secretErr error
	if !strings.HasPrefix(cfg.Stripe.WebhookSecret, "whsec_") {
		secretErr = fmt.Errorf("STRIPE_WEBHOOK_SECRET does not look like a webhook signing secret")
	}
	return append(checks, CredentialCheck{Name: "stripe webhook secret", Err: secretErr})
}

// PrintChecks writes one status line per check and reports whether all passed
func PrintChecks(out io.Writer, checks []CredentialCheck) bool {
	ok := true
	for _, check := range checks {
		if check.Err != nil {
			ok = false
			fmt.Fprintf(out, "✗ %s: %v\n", check.Name, check.Err)
			continue
		}
		fmt.Fprintf(out, "✓ %s\n", check.Name)
	}
	return ok
}

// VerifyCredentialsCmd checks the credentials of the configured deployment
func (handler *ServiceCommandHandler) VerifyCredentialsCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadRestConfig(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	database := PingFunc(func(ctx context.Context) error {
		db, err := persistence.NewDBConnection(cfg.Database)
		if err != nil {
			return err
		}
		defer func() { _ = persistence.CloseDB(db) }()
		return persistence.Ping(ctx, db)
	})

	storage := PingFunc(func(ctx context.Context) error {
		spaces, err := connector.NewSpacesConnector(&cfg.Spaces, handler.logger)
		if err != nil {
			return err
		}
		return spaces.Ping(ctx)
	})

	if !PrintChecks(cmd.OutOrStdout(), VerifyCredentials(ctx, cfg, database, storage)) {
		return fmt.Errorf("credential verification failed")
	}
	return nil
}

// SendRemindersCmd notifies admins about consultations scheduled within the horizon
func (handler *ServiceCommandHandler) SendRemindersCmd(cmd *cobra.Command, _ []string) error {
	horizon, err := cmd.Flags().GetDuration("horizon")
	if err != nil {
		return fmt.Errorf("invalid horizon flag: %w", err)
	}

	cfg, err := loadRestConfig(cmd)
	if err != nil {
		return err
	}

	db, err := handler.openDatabase(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = persistence.CloseDB(db) }()

	notificationRepo, err := persistence.NewGormNotificationRepository(db, handler.logger)
	if err != nil {
		return err
	}
	consultationRepo, err := persistence.NewGormConsultationRepository(db, handler.logger)
	if err != nil {
		return err
	}

	notificationService, err := app.NewNotificationService(notificationRepo, handler.logger)
	if err != nil {
		return err
	}
	consultationService, err := app.NewConsultationService(consultationRepo, notificationService, handler.logger)
	if err != nil {
		return err
	}

	sent, err := consultationService.SendReminders(cmd.Context(), horizon)
	fmt.Fprintf(cmd.OutOrStdout(), "Sent %d consultation reminder(s)\n", sent)
	return err
}

// CreateAdminCmd bootstraps an admin account
func (handler *ServiceCommandHandler) CreateAdminCmd(cmd *cobra.Command, _ []string) error {
	email, _ := cmd.Flags().GetString("email")
	name, _ := cmd.Flags().GetString("name")
	role, _ := cmd.Flags().GetString("role")

	password := os.Getenv(adminPasswordEnv)
	if password == "" {
		return fmt.Errorf("%s must hold the new admin's password", adminPasswordEnv)
	}

	cfg, err := loadRestConfig(cmd)
	if err != nil {
		return err
	}

	db, err := handler.openDatabase(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = persistence.CloseDB(db) }()

	adminRepo, err := persistence.NewGormAdminRepository(db, handler.logger)
	if err != nil {
		return err
	}
	adminService, err := app.NewAdminService(adminRepo, handler.logger)
	if err != nil {
		return err
	}

	admin, err := adminService.Create(cmd.Context(), &admins.CreateAdminInput{
		Email:    email,
		FullName: name,
		Password: password,
		Role:     role,
	})
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Created %s %s (%s)\n", admin.Role, admin.Email, admin.ID)
	return nil
}

// InitServiceCommands registers verify-credentials, send-reminders and create-admin
func InitServiceCommands(rootCmd *cobra.Command) error {
	handler, err := NewServiceCommandHandler()
	if err != nil {
		return err
	}
	initServiceCommands(rootCmd, handler)
	return nil
}

func initServiceCommands(rootCmd *cobra.Command, handler *ServiceCommandHandler) {
	verifyCmd := &cobra.Command{
		Use:   "verify-credentials",
		Short: "Check database, Spaces and Stripe webhook credentials",
		Args:  cobra.NoArgs,
		RunE:  handler.VerifyCredentialsCmd,
	}

	remindersCmd := &cobra.Command{
		Use:   "send-reminders",
		Short: "Notify admins about consultations scheduled soon",
		Args:  cobra.NoArgs,
		RunE:  handler.SendRemindersCmd,
	}
	remindersCmd.Flags().Duration("horizon", 24*time.Hour, "Remind about consultations starting within this window")

	createAdminCmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an admin account; the password is read from " + adminPasswordEnv,
		Args:  cobra.NoArgs,
		RunE:  handler.CreateAdminCmd,
	}
	createAdminCmd.Flags().String("email", "", "Email of the new admin")
	createAdminCmd.Flags().String("name", "", "Full name of the new admin")
	createAdminCmd.Flags().String("role", admins.RoleSuperAdmin, "Role: super_admin, admin or viewer")
	_ = createAdminCmd.MarkFlagRequired("email")
	_ = createAdminCmd.MarkFlagRequired("name")

	rootCmd.AddCommand(verifyCmd, remindersCmd, createAdminCmd)
}
