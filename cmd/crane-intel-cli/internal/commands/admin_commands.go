package commands

import (
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/craneintel/crane-intelligence/internal/adminclient"

	"github.com/spf13/cobra"
)

// AdminCommandHandler drives the admin API of a running deployment
type AdminCommandHandler struct {
	// newClient is replaced in tests
	newClient func(cmd *cobra.Command) (*adminclient.Client, error)
}

// NewAdminCommandHandler creates an AdminCommandHandler that keeps tokens in the configured credentials file
func NewAdminCommandHandler() *AdminCommandHandler {
	return &AdminCommandHandler{newClient: clientFromConfig}
}

func clientFromConfig(cmd *cobra.Command) (*adminclient.Client, error) {
	cfg, err := loadOpsConfig(cmd)
	if err != nil {
		return nil, err
	}

	baseURL := cfg.APIBaseURL
	if override, _ := cmd.Flags().GetString("api-url"); override != "" {
		baseURL = override
	}

	stderr := cmd.ErrOrStderr()
	return adminclient.New(baseURL,
		adminclient.WithTokenStore(adminclient.NewFileTokenStore(cfg.CredentialsFile)),
		adminclient.WithSessionExpiredHook(func() {
			fmt.Fprintln(stderr, "Session expired. Run `crane-intel-cli admin login` again.")
		}),
	), nil
}

// LoginCmd logs in and stores the token pair
func (handler *AdminCommandHandler) LoginCmd(cmd *cobra.Command, _ []string) error {
	email, _ := cmd.Flags().GetString("email")
	password := os.Getenv(adminPasswordEnv)
	if password == "" {
		return fmt.Errorf("%s must hold the admin password", adminPasswordEnv)
	}

	client, err := handler.newClient(cmd)
	if err != nil {
		return err
	}

	response, err := client.Login(cmd.Context(), email, password)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Logged in as %s (%s)\n", response.Admin.Email, response.Admin.Role)
	return nil
}

// LogoutCmd revokes the stored session
func (handler *AdminCommandHandler) LogoutCmd(cmd *cobra.Command, _ []string) error {
	client, err := handler.newClient(cmd)
	if err != nil {
		return err
	}
	if err := client.Logout(cmd.Context()); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "✓ Logged out")
	return nil
}

// StatsCmd prints the dashboard figures
func (handler *AdminCommandHandler) StatsCmd(cmd *cobra.Command, _ []string) error {
	client, err := handler.newClient(cmd)
	if err != nil {
		return err
	}

	dashboard, err := client.Dashboard(cmd.Context())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Users\t%d (%d active)\n", dashboard.TotalUsers, dashboard.ActiveUsers)
	fmt.Fprintf(w, "Open consultations\t%d\n", dashboard.OpenConsultations)
	fmt.Fprintf(w, "Succeeded payments\t%d\n", dashboard.SucceededPayments)
	fmt.Fprintf(w, "Gross revenue\t%s\n", formatCents(dashboard.GrossRevenueCents))
	fmt.Fprintf(w, "Refunded\t%s\n", formatCents(dashboard.RefundedCents))
	fmt.Fprintf(w, "Net revenue\t%s\n", formatCents(dashboard.NetRevenueCents))
	fmt.Fprintf(w, "Unread notifications\t%d\n", dashboard.UnreadNotifications)

	statuses := make([]string, 0, len(dashboard.ReportsByStatus))
	for status := range dashboard.ReportsByStatus {
		statuses = append(statuses, status)
	}
	sort.Strings(statuses)
	for _, status := range statuses {
		fmt.Fprintf(w, "Reports %s\t%d\n", status, dashboard.ReportsByStatus[status])
	}
	return w.Flush()
}

// ConsultationsCmd lists consultation requests
func (handler *AdminCommandHandler) ConsultationsCmd(cmd *cobra.Command, _ []string) error {
	client, err := handler.newClient(cmd)
	if err != nil {
		return err
	}

	page, err := client.ListConsultations(cmd.Context(), listOptions(cmd))
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tNAME\tEMAIL\tSUBJECT\tPREFERRED")
	for _, c := range page.Items {
		preferred := "-"
		if c.PreferredDate != nil {
			preferred = c.PreferredDate.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", c.ID, c.Status, c.Name, c.Email, c.Subject, preferred)
	}
	return flushWithTotal(w, cmd.OutOrStdout(), len(page.Items), page.Total)
}

// ReportsCmd lists FMV reports
func (handler *AdminCommandHandler) ReportsCmd(cmd *cobra.Command, _ []string) error {
	client, err := handler.newClient(cmd)
	if err != nil {
		return err
	}

	page, err := client.ListReports(cmd.Context(), listOptions(cmd))
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tTYPE\tCRANE\tAMOUNT\tCREATED")
	for _, r := range page.Items {
		crane := fmt.Sprintf("%d %s %s", r.CraneYear, r.CraneMake, r.CraneModel)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", r.ID, r.Status, r.ReportType, crane, formatCents(r.AmountCents), r.CreatedAt.Format("2006-01-02"))
	}
	return flushWithTotal(w, cmd.OutOrStdout(), len(page.Items), page.Total)
}

func listOptions(cmd *cobra.Command) *adminclient.ListOptions {
	limit, _ := cmd.Flags().GetInt("limit")
	status, _ := cmd.Flags().GetString("status")
	return &adminclient.ListOptions{
		Limit:   limit,
		Filters: map[string]string{"status": status},
	}
}

func flushWithTotal(w *tabwriter.Writer, out io.Writer, shown int, total int64) error {
	if err := w.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "%d of %d shown\n", shown, total)
	return err
}

func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

// InitAdminCommands registers the admin command group
func InitAdminCommands(rootCmd *cobra.Command) error {
	return initAdminCommands(rootCmd, NewAdminCommandHandler())
}

func initAdminCommands(rootCmd *cobra.Command, handler *AdminCommandHandler) error {
	adminCmd := &cobra.Command{
		Use:   "admin",
		Short: "Use the admin API of a running deployment",
	}
	adminCmd.PersistentFlags().String("api-url", "", "Base URL of the API, overrides api_base_url of the ops config")

	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Log in; the password is read from " + adminPasswordEnv,
		Args:  cobra.NoArgs,
		RunE:  handler.LoginCmd,
	}
	loginCmd.Flags().String("email", "", "Admin email")
	_ = loginCmd.MarkFlagRequired("email")

	logoutCmd := &cobra.Command{
		Use:   "logout",
		Short: "Revoke the stored session",
		Args:  cobra.NoArgs,
		RunE:  handler.LogoutCmd,
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show dashboard figures",
		Args:  cobra.NoArgs,
		RunE:  handler.StatsCmd,
	}

	consultationsCmd := &cobra.Command{
		Use:   "consultations",
		Short: "List consultation requests",
		Args:  cobra.NoArgs,
		RunE:  handler.ConsultationsCmd,
	}

	reportsCmd := &cobra.Command{
		Use:   "reports",
		Short: "List FMV reports",
		Args:  cobra.NoArgs,
		RunE:  handler.ReportsCmd,
	}

	for _, listCmd := range []*cobra.Command{consultationsCmd, reportsCmd} {
		listCmd.Flags().Int("limit", 20, "Maximum number of rows")
		listCmd.Flags().String("status", "", "Only show this status")
	}

	adminCmd.AddCommand(loginCmd, logoutCmd, statsCmd, consultationsCmd, reportsCmd)
	rootCmd.AddCommand(adminCmd)
	return nil
}
