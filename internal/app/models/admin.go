package models

// Admin lives in a separate identity space from doctors and carries no
// credentialing status; an admin match during login bypasses the active gate.
type Admin struct {
	ID        string `json:"id" bson:"_id,omitempty"`
	Username  string `json:"username" bson:"username"`
	Name      string `json:"name" bson:"name"`
	Email     string `json:"email" bson:"email"`
	Password  string `json:"-" bson:"password"`
	TimeModel `bson:",inline"`
}
