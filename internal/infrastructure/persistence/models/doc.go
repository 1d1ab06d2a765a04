// Package models contains the GORM table models. They are kept apart from the
// domain entities so column types and indexes stay a storage concern.
package models

// All returns every model for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&FMVReportModel{},
		&ConsultationModel{},
		&PaymentModel{},
		&WebhookEventModel{},
		&AdminUserModel{},
		&AdminSessionModel{},
		&AuditLogModel{},
		&NotificationModel{},
		&MediaObjectModel{},
		&SettingModel{},
	}
}
