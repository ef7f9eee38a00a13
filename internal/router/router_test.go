package router_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ndagen/internal/config"
	"ndagen/internal/docx"
	"ndagen/internal/docx/docxtest"
	"ndagen/internal/domain"
	"ndagen/internal/handler"
	"ndagen/internal/repository/memory"
	"ndagen/internal/resolver/directory"
	"ndagen/internal/router"
	"ndagen/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(t *testing.T) *gin.Engine {
	t.Helper()
	cfg := &config.Config{
		Template: config.TemplateConfig{
			NamePlaceholder:    domain.DefaultNamePlaceholder,
			AddressPlaceholder: domain.DefaultAddressPlaceholder,
		},
		Flow:   config.FlowConfig{AddressMode: domain.AddressModeAuto},
		Output: config.OutputConfig{Prefix: "保密协议", Separator: " ", MaxNameLength: 50},
	}
	tpl, err := docx.Parse(docxtest.Build(
		docxtest.Paragraph("甲方：", domain.DefaultNamePlaceholder),
		docxtest.Paragraph("地址：", domain.DefaultAddressPlaceholder),
	), "memory", cfg.Template.Placeholders()...)
	require.NoError(t, err)

	repo := memory.NewSessionRepo(0, 0)
	t.Cleanup(repo.Close)
	dir := directory.New(directory.DemoEntries())
	templates := service.NewTemplateService(tpl, cfg.Template, nil)
	sessions := service.NewSessionService(repo, templates, dir, cfg, nil)

	return router.Setup(router.Handlers{
		Session:   handler.NewSessionHandler(sessions),
		Template:  handler.NewTemplateHandler(templates),
		Directory: handler.NewDirectoryHandler(dir),
		Health:    handler.NewHealthHandler(templates),
	}, []string{"http://localhost:3000"}, zap.NewNop())
}

func do(t *testing.T, r http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp struct {
		Data map[string]interface{} `json:"data"`
	}
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
	}
	return w, resp.Data
}

func TestRouter_FormFlowWithDirectoryLookup(t *testing.T) {
	r := newEngine(t)

	w, data := do(t, r, http.MethodPost, "/api/v1/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	id := data["id"].(string)

	w, _ = do(t, r, http.MethodGet, "/api/v1/sessions/"+id+"/download", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w, data = do(t, r, http.MethodPut, "/api/v1/sessions/"+id+"/company", map[string]string{"company_name": "北京智云"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ready", data["state"])
	assert.Equal(t, "北京市海淀区中关村大街1号鼎好大厦A座12层", data["address"])

	w, _ = do(t, r, http.MethodGet, "/api/v1/sessions/"+id+"/download", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.DocxContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")

	paras, err := docx.ExtractParagraphs(w.Body.Bytes())
	require.NoError(t, err)
	assert.Equal(t, []string{"甲方：北京智云", "地址：北京市海淀区中关村大街1号鼎好大厦A座12层"}, paras)

	w, data = do(t, r, http.MethodGet, "/api/v1/sessions/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotNil(t, data["last_generated"])

	w, _ = do(t, r, http.MethodDelete, "/api/v1/sessions/"+id, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = do(t, r, http.MethodGet, "/api/v1/sessions/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_ManualAddressAfterMiss(t *testing.T) {
	r := newEngine(t)

	_, data := do(t, r, http.MethodPost, "/api/v1/sessions", nil)
	id := data["id"].(string)

	_, data = do(t, r, http.MethodPut, "/api/v1/sessions/"+id+"/company", map[string]string{"company_name": "测试公司名"})
	assert.Equal(t, "address_confirmed", data["state"])
	assert.Equal(t, "manual", data["address_source"])

	_, data = do(t, r, http.MethodPut, "/api/v1/sessions/"+id+"/address", map[string]string{"address": "测试地址"})
	assert.Equal(t, "ready", data["state"])

	w, _ := do(t, r, http.MethodGet, "/api/v1/sessions/"+id+"/download", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "filename*=utf-8''")
}

func TestRouter_HealthTemplateAndPage(t *testing.T) {
	r := newEngine(t)

	w, _ := do(t, r, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = do(t, r, http.MethodGet, "/readyz", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, data := do(t, r, http.MethodGet, "/api/v1/template", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, data["placeholders_ready"])

	w, _ = do(t, r, http.MethodGet, "/api/v1/unknown", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "保密协议智能生成器")
}
