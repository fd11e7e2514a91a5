package employees

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/m04kA/barber-frontdesk/internal/domain"
)

// maxFormBytes форма мастера: фото до 5 МБ плюс поля
const maxFormBytes = 6 << 20

var errPhotoTooLarge = errors.New("photo too large")

// ParseEmployeeForm читает multipart-форму: name, nameAr, photo (необязательно)
// Формат и размер фото проверяет сервис
func ParseEmployeeForm(w http.ResponseWriter, r *http.Request) (domain.EmployeeInput, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseMultipartForm(maxFormBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return domain.EmployeeInput{}, errPhotoTooLarge
		}
		return domain.EmployeeInput{}, fmt.Errorf("parse multipart form: %w", err)
	}

	in := domain.EmployeeInput{
		Name:   strings.TrimSpace(r.FormValue("name")),
		NameAr: strings.TrimSpace(r.FormValue("nameAr")),
	}

	file, header, err := r.FormFile("photo")
	if errors.Is(err, http.ErrMissingFile) {
		return in, nil
	}
	if err != nil {
		return domain.EmployeeInput{}, fmt.Errorf("read photo: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return domain.EmployeeInput{}, fmt.Errorf("read photo: %w", err)
	}
	in.Photo = &domain.Photo{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}
	return in, nil
}
