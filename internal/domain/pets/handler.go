package pets

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"pet-adoption/internal/middleware"
	"pet-adoption/internal/ports/media"

	"github.com/go-chi/chi/v5"
)

// AlreadyAdoptedMessage es el texto fijo que ve el visitante cuando su IP ya adoptó.
const AlreadyAdoptedMessage = "You have already adopted a pet"

const maxUploadBytes = 10 << 20

// RegisterRoutes monta las rutas públicas y las de admin.
// requireAdmin protege las mutaciones del catálogo.
func RegisterRoutes(r chi.Router, svc *Service, requireAdmin func(http.Handler) http.Handler) {
	r.Get("/pets", listPetsHandler(svc))
	r.Get("/check-adoption/{ip}", checkAdoptionHandler(svc))
	r.Post("/adopt", adoptHandler(svc))

	r.Group(func(ar chi.Router) {
		ar.Use(requireAdmin)

		ar.Post("/add-animal", addAnimalHandler(svc))
		ar.Put("/update-animal/{id}", updateAnimalHandler(svc))
		ar.Delete("/remove-animal/{id}", removeAnimalHandler(svc))
		ar.Put("/unadopt-animal/{id}", unadoptAnimalHandler(svc))
	})
}

// petResponse replica la fila de la tabla pets (adopted_by/adopter_ip en null si no hay adopción).
type petResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	AdoptedBy   *string `json:"adopted_by"`
	AdopterIP   *string `json:"adopter_ip"`
}

type adoptRequest struct {
	ID          int64  `json:"id"`
	AdopteeName string `json:"adopteeName"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type hasAdoptedResponse struct {
	HasAdopted bool `json:"hasAdopted"`
}

type createdResponse struct {
	ID int64 `json:"id"`
}

type updatedResponse struct {
	Updated int64 `json:"updated"`
}

type deletedResponse struct {
	Deleted int64 `json:"deleted"`
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Description Devuelve todas las mascotas ordenadas por id, con su estado de adopción.
// @Tags pets
// @Produce json
// @Success 200 {array} petResponse
// @Failure 500 {object} errorResponse
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// checkAdoptionHandler godoc
// @Summary Consultar adopción por IP
// @Tags adoption
// @Produce json
// @Param ip path string true "IP del visitante"
// @Success 200 {object} hasAdoptedResponse
// @Failure 500 {object} errorResponse
// @Router /check-adoption/{ip} [get]
func checkAdoptionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ip := chi.URLParam(r, "ip")
		has, err := svc.HasAdopted(r.Context(), ip)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, hasAdoptedResponse{HasAdopted: has})
	}
}

// adoptHandler godoc
// @Summary Adoptar una mascota
// @Description Registra la adopción con el nombre indicado y la IP del request. Una adopción por IP. La notificación a Telegram se encola y no afecta la respuesta.
// @Tags adoption
// @Accept json
// @Produce json
// @Param payload body adoptRequest true "id de la mascota y nombre del adoptante"
// @Success 200 {object} messageResponse
// @Failure 400 {object} errorResponse "You have already adopted a pet / invalid input"
// @Failure 404 {object} errorResponse "pet not found"
// @Failure 409 {object} errorResponse "pet has already been adopted"
// @Failure 500 {object} errorResponse
// @Router /adopt [post]
func adoptHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req adoptRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		_, err := svc.Adopt(r.Context(), AdoptInput{
			PetID:       req.ID,
			AdopterName: req.AdopteeName,
			AdopterIP:   middleware.ClientIP(r),
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, messageResponse{Message: "Pet adopted successfully"})
	}
}

// addAnimalHandler godoc
// @Summary Agregar mascota
// @Tags admin
// @Accept mpfd
// @Produce json
// @Security AdminSession
// @Param name formData string true "Nombre"
// @Param description formData string false "Descripción"
// @Param image formData file true "Imagen"
// @Success 200 {object} createdResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /add-animal [post]
func addAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ParseUploadForm(r); err != nil {
			writeError(w, http.StatusBadRequest, "invalid form")
			return
		}

		up, closeFile, err := FormImage(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid image")
			return
		}
		defer closeFile()

		id, err := svc.Create(r.Context(), CreateInput{
			Name:        r.FormValue("name"),
			Description: r.FormValue("description"),
			Image:       up,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, createdResponse{ID: id})
	}
}

// updateAnimalHandler godoc
// @Summary Editar mascota
// @Description Actualiza nombre y descripción; la imagen solo si viene en el form.
// @Tags admin
// @Accept mpfd
// @Produce json
// @Security AdminSession
// @Param id path int true "ID de la mascota"
// @Param name formData string true "Nombre"
// @Param description formData string false "Descripción"
// @Param image formData file false "Imagen nueva"
// @Success 200 {object} updatedResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /update-animal/{id} [put]
func updateAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		if err := ParseUploadForm(r); err != nil {
			writeError(w, http.StatusBadRequest, "invalid form")
			return
		}

		up, closeFile, err := FormImage(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid image")
			return
		}
		defer closeFile()

		n, err := svc.Update(r.Context(), id, UpdateInput{
			Name:        r.FormValue("name"),
			Description: r.FormValue("description"),
			Image:       up,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, updatedResponse{Updated: n})
	}
}

// removeAnimalHandler godoc
// @Summary Eliminar mascota
// @Tags admin
// @Produce json
// @Security AdminSession
// @Param id path int true "ID de la mascota"
// @Success 200 {object} deletedResponse "deleted=0 si no existía"
// @Failure 401 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /remove-animal/{id} [delete]
func removeAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		n, err := svc.Remove(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, deletedResponse{Deleted: n})
	}
}

// unadoptAnimalHandler godoc
// @Summary Marcar mascota como no adoptada
// @Tags admin
// @Produce json
// @Security AdminSession
// @Param id path int true "ID de la mascota"
// @Success 200 {object} updatedResponse
// @Failure 401 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /unadopt-animal/{id} [put]
func unadoptAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		n, err := svc.Unadopt(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, updatedResponse{Updated: n})
	}
}

// ErrorStatus traduce errores del servicio a status + mensaje visible.
// Lo usan también las vistas server-side.
func ErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, ErrAlreadyAdopted):
		return http.StatusBadRequest, AlreadyAdoptedMessage
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, ErrPetUnavailable):
		return http.StatusConflict, err.Error()
	default:
		return http.StatusInternalServerError, err.Error()
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	status, msg := ErrorStatus(err)
	writeError(w, status, msg)
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := strings.TrimSpace(chi.URLParam(r, "id"))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

// ParseUploadForm acepta multipart (con imagen) o urlencoded (sin imagen).
func ParseUploadForm(r *http.Request) error {
	err := r.ParseMultipartForm(maxUploadBytes)
	if errors.Is(err, http.ErrNotMultipart) {
		return r.ParseForm()
	}
	return err
}

// FormImage devuelve nil si no vino archivo "image".
// closeFile siempre es seguro de llamar.
func FormImage(r *http.Request) (*media.Upload, func(), error) {
	noop := func() {}
	if r.MultipartForm == nil {
		return nil, noop, nil
	}

	f, hdr, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, noop, nil
	}
	if err != nil {
		return nil, noop, err
	}
	return uploadFrom(f, hdr), func() { _ = f.Close() }, nil
}

func uploadFrom(f io.Reader, hdr *multipart.FileHeader) *media.Upload {
	return &media.Upload{
		Filename:    hdr.Filename,
		ContentType: hdr.Header.Get("Content-Type"),
		Content:     f,
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Image:       p.Image,
		AdoptedBy:   p.AdoptedBy,
		AdopterIP:   p.AdopterIP,
	}
}

// writeJSON / writeError están duplicados en cada módulo (pets/site/admin/network)
// para no crear un paquete de helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
