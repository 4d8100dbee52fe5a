package models

// Plan is the subscription tier of a client.
type Plan string

const (
	PlanBasic      Plan = "Basic"
	PlanStandard   Plan = "Standard"
	PlanPremium    Plan = "Premium"
	PlanEnterprise Plan = "Enterprise"
)

// ClientStatus is the lifecycle state of a client account.
type ClientStatus string

const (
	ClientActive    ClientStatus = "Active"
	ClientInactive  ClientStatus = "Inactive"
	ClientSuspended ClientStatus = "Suspended"
	ClientBanned    ClientStatus = "Banned"
)

// Platform is the playback platform of a distribution channel.
type Platform string

const (
	PlatformRoku      Platform = "Roku"
	PlatformFireTV    Platform = "FireTV"
	PlatformAppleTV   Platform = "AppleTV"
	PlatformAndroidTV Platform = "AndroidTV"
	PlatformSamsungTV Platform = "SamsungTV"
	PlatformLG        Platform = "LG"
	PlatformWeb       Platform = "Web"
)

// DistributionStatus tracks a distribution channel through admin approval.
// Pending -> Active | Inactive.
type DistributionStatus string

const (
	DistributionPending  DistributionStatus = "Pending"
	DistributionActive   DistributionStatus = "Active"
	DistributionInactive DistributionStatus = "Inactive"
)

type PaymentStatus string

const (
	PaymentPaid       PaymentStatus = "Paid"
	PaymentPending    PaymentStatus = "Pending"
	PaymentProcessing PaymentStatus = "Processing"
)

type TicketStatus string

const (
	TicketOpen       TicketStatus = "Open"
	TicketInProgress TicketStatus = "In Progress"
	TicketResolved   TicketStatus = "Resolved"
	TicketClosed     TicketStatus = "Closed"
)

type TicketPriority string

const (
	PriorityLow    TicketPriority = "Low"
	PriorityMedium TicketPriority = "Medium"
	PriorityHigh   TicketPriority = "High"
	PriorityUrgent TicketPriority = "Urgent"
)

// NotificationType labels a notification for both audiences. The client-facing
// types double as severity levels (alert/warning/success/info).
type NotificationType string

const (
	NotifClientLogin        NotificationType = "client_login"
	NotifClientAction       NotificationType = "client_action"
	NotifDistributionAdd    NotificationType = "distribution_add"
	NotifDistributionRemove NotificationType = "distribution_remove"
	NotifPasswordReset      NotificationType = "password_reset"
	NotifAlert              NotificationType = "alert"
	NotifWarning            NotificationType = "warning"
	NotifSuccess            NotificationType = "success"
	NotifInfo               NotificationType = "info"
)

// AdminActionType labels an entry in a client's audit trail.
type AdminActionType string

const (
	ActionBan            AdminActionType = "ban"
	ActionSuspend        AdminActionType = "suspend"
	ActionActivate       AdminActionType = "activate"
	ActionDeactivate     AdminActionType = "deactivate"
	ActionWarn           AdminActionType = "warn"
	ActionPasswordChange AdminActionType = "password_change"
	ActionFeeUpdate      AdminActionType = "fee_update"
)

// SenderType tags the author of a support ticket message.
type SenderType string

const (
	SenderClient SenderType = "client"
	SenderAdmin  SenderType = "admin"
)
