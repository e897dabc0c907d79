package profile

// ProfileUpdate is a merge-update: only non-nil fields overwrite the stored
// profile. Field pointers map one-to-one onto entity.UserProfile.
type ProfileUpdate struct {
	Name       *string `json:"name" validate:"omitempty,min=1"`
	Email      *string `json:"email" validate:"omitempty,email"`
	Address    *string `json:"address" validate:"omitempty,min=1"`
	Phone      *string `json:"phone" validate:"omitempty,min=3"`
	CardName   *string `json:"cardName" validate:"omitempty,min=1"`
	CardNumber *string `json:"cardNumber" validate:"omitempty,min=12"`
	ExpiryDate *string `json:"expiryDate" validate:"omitempty,min=4"`
	CVV        *string `json:"cvv" validate:"omitempty,min=3,max=4"`
}

func (u ProfileUpdate) Empty() bool {
	return u.Name == nil && u.Email == nil && u.Address == nil && u.Phone == nil &&
		u.CardName == nil && u.CardNumber == nil && u.ExpiryDate == nil && u.CVV == nil
}
