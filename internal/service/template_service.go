package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"ndagen/internal/config"
	"ndagen/internal/docx"
	"ndagen/internal/domain"
	"ndagen/internal/port"
)

const previewParagraphs = 3

// TemplateService exposes the loaded agreement template.
type TemplateService interface {
	Status() *domain.TemplateStatus
	Locate(text string) *domain.PlaceholderReport
	Fill(companyName, address string) ([]byte, error)
}

type templateService struct {
	tpl     *docx.Template
	cfg     config.TemplateConfig
	modTime *time.Time
}

// NewTemplateService wraps an already validated template. modTime may be nil
// when the source has no modification time.
func NewTemplateService(tpl *docx.Template, cfg config.TemplateConfig, modTime *time.Time) TemplateService {
	return &templateService{tpl: tpl, cfg: cfg, modTime: modTime}
}

// LoadTemplateService loads and validates the template, from object storage
// when a bucket and key are configured and from the local path otherwise.
func LoadTemplateService(
	ctx context.Context,
	tplCfg *config.TemplateConfig,
	s3Cfg *config.S3Config,
	storage port.ObjectStorage,
) (TemplateService, error) {
	return loadTemplate(ctx, tplCfg, s3Cfg, storage, tplCfg.Placeholders())
}

// InspectTemplate loads the template like LoadTemplateService but accepts one
// that lacks placeholders, so Status and Locate can report what is wrong.
func InspectTemplate(
	ctx context.Context,
	tplCfg *config.TemplateConfig,
	s3Cfg *config.S3Config,
	storage port.ObjectStorage,
) (TemplateService, error) {
	return loadTemplate(ctx, tplCfg, s3Cfg, storage, nil)
}

func loadTemplate(
	ctx context.Context,
	tplCfg *config.TemplateConfig,
	s3Cfg *config.S3Config,
	storage port.ObjectStorage,
	required []string,
) (TemplateService, error) {
	if s3Cfg.Enabled(tplCfg) {
		if storage == nil {
			return nil, fmt.Errorf("%w: object storage not configured", domain.ErrTemplateNotAvailable)
		}
		data, err := storage.Download(ctx, s3Cfg.Bucket, tplCfg.S3Key)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("%w: s3://%s/%s", domain.ErrTemplateNotFound, s3Cfg.Bucket, tplCfg.S3Key)
			}
			return nil, fmt.Errorf("downloading template: %w", err)
		}
		tpl, err := docx.Parse(data, fmt.Sprintf("s3://%s/%s", s3Cfg.Bucket, tplCfg.S3Key), required...)
		if err != nil {
			return nil, err
		}
		return NewTemplateService(tpl, *tplCfg, nil), nil
	}

	tpl, err := docx.Load(tplCfg.Path, required...)
	if err != nil {
		return nil, err
	}
	var modTime *time.Time
	if info, statErr := os.Stat(tplCfg.Path); statErr == nil {
		mt := info.ModTime()
		modTime = &mt
	}
	return NewTemplateService(tpl, *tplCfg, modTime), nil
}

func (s *templateService) Status() *domain.TemplateStatus {
	placeholders := make(map[string]bool, 2)
	ready := true
	missing := s.tpl.Missing(s.cfg.Placeholders()...)
	for _, p := range s.cfg.Placeholders() {
		placeholders[p] = true
	}
	for _, p := range missing {
		placeholders[p] = false
		ready = false
	}

	size := s.tpl.Size()
	return &domain.TemplateStatus{
		Source:            s.tpl.Source(),
		SizeBytes:         size,
		SizeKB:            math.Round(float64(size)/1024*10) / 10,
		ModifiedAt:        s.modTime,
		Placeholders:      placeholders,
		PlaceholdersReady: ready,
	}
}

// Locate reports which paragraphs contain text. An empty text searches for
// the company name placeholder.
func (s *templateService) Locate(text string) *domain.PlaceholderReport {
	target := strings.TrimSpace(text)
	if target == "" {
		target = s.cfg.NamePlaceholder
	}

	paras := s.tpl.Paragraphs()
	report := &domain.PlaceholderReport{Target: target, Matches: []domain.PlaceholderMatch{}}
	for _, i := range s.tpl.Locate(target) {
		report.Matches = append(report.Matches, domain.PlaceholderMatch{Index: i, Text: paras[i]})
	}
	report.Found = len(report.Matches) > 0

	n := previewParagraphs
	if len(paras) < n {
		n = len(paras)
	}
	report.Preview = paras[:n]
	return report
}

func (s *templateService) Fill(companyName, address string) ([]byte, error) {
	buf, err := s.tpl.Fill(map[string]string{
		s.cfg.NamePlaceholder:    companyName,
		s.cfg.AddressPlaceholder: address,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrGenerationFailed, err)
	}
	return buf.Bytes(), nil
}
