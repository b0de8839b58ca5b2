package entity

// Contact is a single entry in the contacts collection.
// ContactName is the unique key within the collection.
type Contact struct {
	ContactName string `json:"contact_name" bson:"contact_name"`
	PhoneNumber string `json:"phone_number" bson:"phone_number"`
	Message     string `json:"message" bson:"message"`
	ImageURL    string `json:"image_url" bson:"image_url"`
}
