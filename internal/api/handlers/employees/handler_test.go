package employees

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barber-frontdesk/internal/domain"
	"github.com/m04kA/barber-frontdesk/internal/integrations/reservationapi"
	employeesService "github.com/m04kA/barber-frontdesk/internal/service/employees"
	"github.com/m04kA/barber-frontdesk/internal/service/employees/models"
	"github.com/m04kA/barber-frontdesk/pkg/logger"
)

type fakeService struct {
	got    domain.EmployeeInput
	gotID  string
	gotTok string
	err    error
}

func (f *fakeService) List(ctx context.Context) ([]models.EmployeeResponse, error) {
	return []models.EmployeeResponse{{ID: "E1", Name: "Ali"}}, f.err
}

func (f *fakeService) Create(ctx context.Context, sess *reservationapi.Session, in domain.EmployeeInput) (*models.EmployeeResponse, error) {
	f.got = in
	if sess != nil {
		f.gotTok = sess.Token
	}
	if f.err != nil {
		return nil, f.err
	}
	return &models.EmployeeResponse{ID: "E2", Name: in.Name}, nil
}

func (f *fakeService) Update(ctx context.Context, sess *reservationapi.Session, id string, in domain.EmployeeInput) (*models.EmployeeResponse, error) {
	f.got, f.gotID = in, id
	if f.err != nil {
		return nil, f.err
	}
	return &models.EmployeeResponse{ID: id, Name: in.Name}, nil
}

func (f *fakeService) Delete(ctx context.Context, sess *reservationapi.Session, id string) error {
	f.gotID = id
	return f.err
}

func employeeForm(t *testing.T, name string, photo []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	require.NoError(t, mw.WriteField("name", name))
	require.NoError(t, mw.WriteField("nameAr", "علي"))
	if photo != nil {
		hdr := textproto.MIMEHeader{}
		hdr.Set("Content-Disposition", `form-data; name="photo"; filename="ali.png"`)
		hdr.Set("Content-Type", "image/png")
		part, err := mw.CreatePart(hdr)
		require.NoError(t, err)
		_, err = part.Write(photo)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func newRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/employees", h.List).Methods(http.MethodGet)
	r.HandleFunc("/admin/employees", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/admin/employees/{id}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/admin/employees/{id}", h.Delete).Methods(http.MethodDelete)
	return r
}

func TestHandler_CreateParsesMultipart(t *testing.T) {
	svc := &fakeService{}
	r := newRouter(NewHandler(svc, logger.NewNop()))

	body, ct := employeeForm(t, " Ali ", []byte{0x89, 'P', 'N', 'G'})
	req := httptest.NewRequest(http.MethodPost, "/admin/employees", body)
	req.Header.Set("Content-Type", ct)
	req = req.WithContext(reservationapi.WithSession(req.Context(), reservationapi.NewSession("tok")))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Ali", svc.got.Name)
	assert.Equal(t, "علي", svc.got.NameAr)
	require.NotNil(t, svc.got.Photo)
	assert.Equal(t, "ali.png", svc.got.Photo.FileName)
	assert.Equal(t, "image/png", svc.got.Photo.ContentType)
	assert.Len(t, svc.got.Photo.Data, 4)
	assert.Equal(t, "tok", svc.gotTok)
}

func TestHandler_UpdateWithoutPhoto(t *testing.T) {
	svc := &fakeService{}
	r := newRouter(NewHandler(svc, logger.NewNop()))

	body, ct := employeeForm(t, "Omar", nil)
	req := httptest.NewRequest(http.MethodPut, "/admin/employees/E7", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "E7", svc.gotID)
	assert.Nil(t, svc.got.Photo)
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{employeesService.ErrInvalidInput, http.StatusBadRequest},
		{employeesService.ErrEmployeeNotFound, http.StatusNotFound},
		{employeesService.ErrUnauthorized, http.StatusUnauthorized},
		{employeesService.ErrInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		r := newRouter(NewHandler(&fakeService{err: tt.err}, logger.NewNop()))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/admin/employees/E1", nil))
		assert.Equal(t, tt.want, rec.Code, tt.err.Error())
	}
}

func TestHandler_CreateRejectsNonMultipart(t *testing.T) {
	r := newRouter(NewHandler(&fakeService{}, logger.NewNop()))

	req := httptest.NewRequest(http.MethodPost, "/admin/employees", bytes.NewBufferString(`{"name":"Ali"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
