package site

// SingletonID es el id fijo de las tablas de una sola fila.
const SingletonID int64 = 1

// PageDetails es el texto editable de la página pública.
type PageDetails struct {
	ID          int64
	Title       string
	Description string
}

// WebsiteTitle es el encabezado global del sitio.
type WebsiteTitle struct {
	ID    int64
	Title string
}

// Defaults se insertan al arrancar si las filas no existen.
var (
	DefaultPageDetails = PageDetails{
		ID:          SingletonID,
		Title:       "Welcome to the Pet Adoption Center",
		Description: "Here you can find a variety of pets looking for a loving home. Browse through the list of available pets and adopt one today!",
	}
	DefaultWebsiteTitle = WebsiteTitle{
		ID:    SingletonID,
		Title: "Pet Adoption Site",
	}
)
