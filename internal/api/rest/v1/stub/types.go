package stub

import "time"

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Message string `json:"message"`
}

// HealthResponse reports service liveness
type HealthResponse struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
}

// ListResponse wraps one page of a listing
type ListResponse[T any] struct {
	Items  []T   `json:"items"`
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}

// LoginRequest is the admin login body
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest carries a refresh token for rotation or logout
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// TokenResponse is a freshly issued token pair
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

// LoginResponse is returned by a successful login
type LoginResponse struct {
	TokenResponse
	Admin AdminUserResponse `json:"admin"`
}

// AdminUserResponse describes an operator account
type AdminUserResponse struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	FullName    string     `json:"full_name"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// PrincipalResponse is the caller of GET auth/me
type PrincipalResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// SessionResponse is one refresh session
type SessionResponse struct {
	ID        string     `json:"id"`
	AdminID   string     `json:"admin_id"`
	UserAgent string     `json:"user_agent"`
	IPAddress string     `json:"ip_address"`
	ExpiresAt time.Time  `json:"expires_at"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// UserResponse describes a customer account
type UserResponse struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	FullName         string    `json:"full_name"`
	Company          string    `json:"company"`
	Phone            string    `json:"phone"`
	SubscriptionTier string    `json:"subscription_tier"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ReportResponse describes an FMV report order
type ReportResponse struct {
	ID                  string     `json:"id"`
	UserID              string     `json:"user_id"`
	ReportType          string     `json:"report_type"`
	CraneMake           string     `json:"crane_make"`
	CraneModel          string     `json:"crane_model"`
	CraneYear           int        `json:"crane_year"`
	Hours               int        `json:"hours"`
	CapacityTons        float64    `json:"capacity_tons"`
	Location            string     `json:"location"`
	Status              string     `json:"status"`
	AmountCents         int64      `json:"amount_cents"`
	Currency            string     `json:"currency"`
	EstimatedValueCents *int64     `json:"estimated_value_cents,omitempty"`
	ReportURL           *string    `json:"report_url,omitempty"`
	Notes               string     `json:"notes"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
	DeliveredAt         *time.Time `json:"delivered_at,omitempty"`
}

// StatusRequest moves a report along its lifecycle
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ConsultationResponse describes a consultation request
type ConsultationResponse struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Company        string     `json:"company"`
	Phone          string     `json:"phone"`
	Subject        string     `json:"subject"`
	Message        string     `json:"message"`
	PreferredDate  *time.Time `json:"preferred_date,omitempty"`
	Status         string     `json:"status"`
	AssignedTo     *string    `json:"assigned_to,omitempty"`
	AdminNotes     string     `json:"admin_notes"`
	ReminderSentAt *time.Time `json:"reminder_sent_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// PaymentResponse describes a provider payment
type PaymentResponse struct {
	ID                string    `json:"id"`
	Provider          string    `json:"provider"`
	ProviderPaymentID string    `json:"provider_payment_id"`
	UserID            *string   `json:"user_id,omitempty"`
	ReportID          *string   `json:"report_id,omitempty"`
	AmountCents       int64     `json:"amount_cents"`
	RefundedCents     int64     `json:"refunded_cents"`
	Currency          string    `json:"currency"`
	Status            string    `json:"status"`
	FailureReason     string    `json:"failure_reason,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// WebhookResponse is always sent with HTTP 200 to the payment provider
type WebhookResponse struct {
	Received bool   `json:"received"`
	Status   string `json:"status"`
}

// NotificationResponse describes an admin notification
type NotificationResponse struct {
	ID        string     `json:"id"`
	Kind      string     `json:"kind"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	Broadcast bool       `json:"broadcast"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// ReadAllResponse reports how many notifications were marked read
type ReadAllResponse struct {
	Updated int64 `json:"updated"`
}

// AuditLogResponse describes one audited admin request
type AuditLogResponse struct {
	ID         string    `json:"id"`
	AdminID    string    `json:"admin_id"`
	AdminEmail string    `json:"admin_email"`
	Action     string    `json:"action"`
	Resource   string    `json:"resource"`
	StatusCode int       `json:"status_code"`
	IPAddress  string    `json:"ip_address"`
	UserAgent  string    `json:"user_agent"`
	CreatedAt  time.Time `json:"created_at"`
}

// SettingResponse is one platform setting
type SettingResponse struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedBy string    `json:"updated_by"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SettingRequest sets a platform setting value
type SettingRequest struct {
	Value string `json:"value"`
}

// MediaObjectResponse describes an uploaded file
type MediaObjectResponse struct {
	ID          string    `json:"id"`
	Category    string    `json:"category,omitempty"`
	FileName    string    `json:"file_name"`
	URL         string    `json:"url"`
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type"`
	UploadedBy  string    `json:"uploaded_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// DashboardResponse holds the admin overview figures
type DashboardResponse struct {
	TotalUsers          int64            `json:"total_users"`
	ActiveUsers         int64            `json:"active_users"`
	ReportsByStatus     map[string]int64 `json:"reports_by_status"`
	OpenConsultations   int64            `json:"open_consultations"`
	SucceededPayments   int64            `json:"succeeded_payments"`
	GrossRevenueCents   int64            `json:"gross_revenue_cents"`
	RefundedCents       int64            `json:"refunded_cents"`
	NetRevenueCents     int64            `json:"net_revenue_cents"`
	UnreadNotifications int64            `json:"unread_notifications"`
}
