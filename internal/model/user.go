package model

import (
	"golang.org/x/crypto/bcrypt"
)

type UserRole string

const (
	RoleAdmin          UserRole = "admin"
	RoleWarehouseStaff UserRole = "warehouse_staff"
	RoleViewer         UserRole = "viewer"
)

// Capability codes carried in JWT claims and checked at the route boundary
const (
	CapOrderEdit     = "orderEdit"
	CapInventoryEdit = "inventoryEdit"
	CapUserCreation  = "userCreation"
)

// Permissions is the per-user capability set. The flags are independent of
// the role string; the role is display-level only.
type Permissions struct {
	OrderEdit     bool `json:"orderEdit"`
	InventoryEdit bool `json:"inventoryEdit"`
	UserCreation  bool `json:"userCreation"`
}

type User struct {
	ID          int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	Username    string      `gorm:"type:varchar(100);uniqueIndex;not null" json:"username" validate:"required"`
	Password    string      `gorm:"type:varchar(255);not null" json:"-"`
	Name        string      `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Role        UserRole    `gorm:"type:varchar(30);not null;default:'viewer'" json:"role" validate:"required,oneof=admin warehouse_staff viewer"`
	Permissions Permissions `gorm:"serializer:json" json:"permissions"`

	// For single session enforcement
	TokenVersion string `gorm:"type:varchar(255);default:''" json:"-"`
}

// SetPassword hashes and sets the user's password
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// HasCapability checks a single capability flag by code
func (u *User) HasCapability(code string) bool {
	switch code {
	case CapOrderEdit:
		return u.Permissions.OrderEdit
	case CapInventoryEdit:
		return u.Permissions.InventoryEdit
	case CapUserCreation:
		return u.Permissions.UserCreation
	}
	return false
}

// CapabilityCodes returns the codes of all granted capabilities
func (u *User) CapabilityCodes() []string {
	codes := []string{}
	if u.Permissions.OrderEdit {
		codes = append(codes, CapOrderEdit)
	}
	if u.Permissions.InventoryEdit {
		codes = append(codes, CapInventoryEdit)
	}
	if u.Permissions.UserCreation {
		codes = append(codes, CapUserCreation)
	}
	return codes
}

// UserResponse is used for API responses (without sensitive data)
type UserResponse struct {
	ID          int64       `json:"id"`
	Username    string      `json:"username"`
	Name        string      `json:"name"`
	Role        UserRole    `json:"role"`
	Permissions Permissions `json:"permissions"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Name:        u.Name,
		Role:        u.Role,
		Permissions: u.Permissions,
	}
}
