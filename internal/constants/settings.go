package constants

const (
	// Profile settings
	SettingWeightKg    = "weight_kg"
	SettingWakeTime    = "wake_time"
	SettingSleepTime   = "sleep_time"
	SettingSensitivity = "sensitivity"
	SettingInstallID   = "install_id"
)
