// seller.go - Seller profile model and its approval state machine

package models

// SellerStatus is the approval state of a seller profile.
type SellerStatus string

const (
	SellerPending  SellerStatus = "pending"
	SellerApproved SellerStatus = "approved"
	SellerRejected SellerStatus = "rejected"
)

// sellerTransitions is the full transition table. Approved is terminal;
// a rejected profile may re-apply and go back to pending.
var sellerTransitions = map[SellerStatus][]SellerStatus{
	SellerPending:  {SellerApproved, SellerRejected},
	SellerRejected: {SellerPending},
	SellerApproved: {},
}

// CanTransitionTo reports whether the state machine allows moving to next.
func (s SellerStatus) CanTransitionTo(next SellerStatus) bool {
	for _, allowed := range sellerTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// SellerProfile is a user's application to sell, at most one per user.
type SellerProfile struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	UserID      uint         `gorm:"uniqueIndex;not null" json:"user_id"`
	User        User         `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	ShopName    string       `gorm:"not null" json:"shop_name"`
	Description string       `json:"description"`
	Status      SellerStatus `gorm:"not null;default:'pending'" json:"status"`
}
