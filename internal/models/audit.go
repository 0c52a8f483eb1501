package models

// AuditInfo carries the identity of the request that created or last
// modified a record. Embedded by composition in each entity.
type AuditInfo struct {
	CreatedBy string `gorm:"type:varchar(255)" json:"created_by,omitempty"`
	UpdatedBy string `gorm:"type:varchar(255)" json:"updated_by,omitempty"`
}
