package identity

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Pen-Clock/BodiaStore/models"
)

// DefaultCustomerName is given to customers provisioned on first contact.
const DefaultCustomerName = "Demo Customer"

// ErrProvisioningFailed means a customer row could not be observed even
// after a create-or-ignore attempt. That should not happen against a
// correctly functioning store; callers must treat it as fatal, not retry.
var ErrProvisioningFailed = errors.New("customer provisioning failed")

// EnsureCustomer guarantees the customer row exists before any cart or
// order write references it. Idempotent: an existing row is returned
// unchanged. Concurrent provisioning of the same id is resolved at the
// store with ON CONFLICT DO NOTHING — the losing writer observes the
// winner's row and proceeds.
func EnsureCustomer(db *gorm.DB, customerID uint) (models.Customer, error) {
	var customer models.Customer
	err := db.First(&customer, "customer_id = ?", customerID).Error
	if err == nil {
		return customer, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Customer{}, err
	}

	fresh := models.Customer{CustomerID: customerID, Name: DefaultCustomerName}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&fresh).Error; err != nil {
		return models.Customer{}, err
	}

	if err := db.First(&customer, "customer_id = ?", customerID).Error; err != nil {
		return models.Customer{}, ErrProvisioningFailed
	}
	return customer, nil
}
