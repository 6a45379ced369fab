// Package entity contains the core business objects of the project.
package entity

// DeviceToken represents one device's registered push delivery endpoint
// as returned by the backend token queries. The harness only reads these
// records; it never mutates them.
type DeviceToken struct {
	UserID     string `json:"user_id"`               // The ID of the user who owns this device.
	Token      string `json:"token"`                 // Opaque FCM push token registered by the client.
	DeviceID   string `json:"device_id"`             // Unique device identifier from the client.
	Platform   string `json:"platform"`              // Device platform (ios, android).
	AppVersion string `json:"app_version,omitempty"` // Client app version; present on user-scoped queries.
	UpdatedAt  string `json:"updated_at"`            // Timestamp of the last registration refresh, displayed as-is.
}
