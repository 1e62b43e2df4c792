package constants

import (
	"database/sql/driver"
	"fmt"
)

// Role mirrors the two-profile model of the fleet: the manager runs the
// office side, the technician runs the shop floor.
type Role string

const (
	RoleManager    Role = "manager"
	RoleTechnician Role = "technician"
)

func (r Role) String() string { return string(r) }

// IsValid reports whether r is one of the known roles
func (r Role) IsValid() bool {
	return r == RoleManager || r == RoleTechnician
}

/* ---------- DB adapters so database/sql scans/values cleanly ---------- */

// Scan implements the sql.Scanner interface
func (r *Role) Scan(src interface{}) error {
	if src == nil {
		*r = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*r = Role(v)
	case []byte:
		*r = Role(v)
	default:
		return fmt.Errorf("Role: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (r Role) Value() (driver.Value, error) { return string(r), nil }
