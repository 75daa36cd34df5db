package pets

import (
	"fmt"
	"time"
)

// Pet es un animal publicado para adopción.
// AdoptedBy / AdopterIP son nil mientras nadie lo adoptó.
type Pet struct {
	ID          int64
	Name        string
	Description string
	Image       string // path servible, ej. /images/1.jpg

	AdoptedBy *string
	AdopterIP *string
}

func (p Pet) IsAdopted() bool {
	return p.AdoptedBy != nil || p.AdopterIP != nil
}

// ProfileUpdate son los campos que el admin puede editar.
// Image nil = conservar la imagen actual.
type ProfileUpdate struct {
	Name        string
	Description string
	Image       *string
}

// Adoption es lo que se notifica hacia afuera cuando una adopción queda registrada.
type Adoption struct {
	PetID       int64
	PetName     string
	AdopterName string
	AdopterIP   string
	At          time.Time
}

// Text es el mensaje que se envía por Telegram.
func (a Adoption) Text() string {
	return fmt.Sprintf("Pet: %d has been adopted by %s (IP: %s)", a.PetID, a.AdopterName, a.AdopterIP)
}
