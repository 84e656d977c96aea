// Package person provides an immutable person record with derived
// properties and time-of-day greetings.
package person

import "fmt"

// Person is an immutable value record. Fields are set at construction;
// "updates" like WithEmail return a new value.
type Person struct {
	name  string
	age   int
	email string // empty means unset
}

// New constructs a Person without an email.
func New(name string, age int) Person {
	return Person{name: name, age: age}
}

// NewWithEmail constructs a Person with an email address.
// The email is stored verbatim; validation is the caller's concern.
func NewWithEmail(name string, age int, email string) Person {
	return Person{name: name, age: age, email: email}
}

// Name returns the person's name.
func (p Person) Name() string {
	return p.name
}

// Age returns the person's age in years.
func (p Person) Age() int {
	return p.age
}

// Email returns the email address and whether one is set.
func (p Person) Email() (string, bool) {
	return p.email, p.email != ""
}

// IsAdult reports whether the person is 18 or older.
func (p Person) IsAdult() bool {
	return p.age >= 18
}

// Greet formats a greeting for the given time of day.
func (p Person) Greet(t TimeOfDay) string {
	return fmt.Sprintf("%s, my name is %s!", t.Greeting(), p.name)
}

// WithEmail returns a copy of p with the given email address.
// The receiver is unmodified.
func (p Person) WithEmail(email string) Person {
	p.email = email
	return p
}

// Equal reports structural equality over all three fields.
func (p Person) Equal(other Person) bool {
	return p == other
}

// String returns "<name>, <age> years old", with the email appended in
// parentheses when set.
func (p Person) String() string {
	if p.email != "" {
		return fmt.Sprintf("%s, %d years old (%s)", p.name, p.age, p.email)
	}
	return fmt.Sprintf("%s, %d years old", p.name, p.age)
}
