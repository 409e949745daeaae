package compare

// AddSelectionRequest is the input for adding a property to the
// comparison selection.
type AddSelectionRequest struct {
	PropertyID uint `json:"property_id" form:"property_id" binding:"required,gt=0"`
}

// ReplaceSelectionRequest is the input for the replace flow offered
// when the selection is full.
type ReplaceSelectionRequest struct {
	OldID uint `json:"old_id" form:"old_id" binding:"required,gt=0"`
	NewID uint `json:"new_id" form:"new_id" binding:"required,gt=0"`
}
