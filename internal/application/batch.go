package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"ring-inspector/internal/domain/entity"
	"ring-inspector/internal/domain/port"
	apperrors "ring-inspector/internal/errors"
	"ring-inspector/internal/logging"
)

// BatchReport итог обработки одного файла.
type BatchReport struct {
	Source string
	Result *entity.InspectionResult
	Output string // путь к размеченному изображению
	Err    error  // изображение не прочитано или результат не сохранён
}

// BatchSummary итог пакетной проверки. Reports идут в порядке входных файлов.
type BatchSummary struct {
	Total     int
	Good      int
	Defective int
	Errors    int // исход анализа Error
	Failed    int // ошибки чтения, декодирования и записи
	Reports   []BatchReport
}

// BatchService проверяет набор файлов пулом воркеров. Ошибка на одном
// изображении не прерывает обработку остальных.
type BatchService struct {
	detector port.DefectDetector
	store    port.ImageStore
	workers  int
	log      *logging.Logger
}

func NewBatchService(detector port.DefectDetector, store port.ImageStore, workers int, log *logging.Logger) *BatchService {
	if workers < 1 {
		workers = 1
	}
	if log == nil {
		log = logging.Discard()
	}
	return &BatchService{detector: detector, store: store, workers: workers, log: log}
}

// Run проверяет файлы и каталоги из paths.
func (s *BatchService) Run(ctx context.Context, paths []string) (*BatchSummary, error) {
	if s.detector == nil {
		return nil, apperrors.NewDetectorUnavailableError()
	}

	files, err := s.store.List(paths)
	if err != nil {
		return nil, err
	}
	s.log.Info("starting inspection", "files", len(files), "workers", s.workers)

	names := resultNames(files)
	reports := make([]BatchReport, len(files))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < s.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				reports[i] = s.inspectFile(ctx, files[i], names[i])
			}
		}()
	}

	for i := range files {
		if ctx.Err() != nil {
			reports[i] = BatchReport{Source: files[i], Err: ctx.Err()}
			continue
		}
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	summary := &BatchSummary{Total: len(files), Reports: reports}
	for _, r := range reports {
		switch {
		case r.Err != nil:
			summary.Failed++
		case r.Result.Status == entity.StatusGood:
			summary.Good++
		case r.Result.Status == entity.StatusDefective:
			summary.Defective++
		default:
			summary.Errors++
		}
	}
	s.log.Info("inspection complete", "total", summary.Total, "good", summary.Good,
		"defective", summary.Defective, "errors", summary.Errors, "failed", summary.Failed)

	return summary, ctx.Err()
}

func (s *BatchService) inspectFile(ctx context.Context, path, outName string) BatchReport {
	report := BatchReport{Source: path}
	s.log.Info("processing image", "path", path)

	data, err := s.store.Read(path)
	if err != nil {
		s.log.Error("could not load image", "path", path, "error", err)
		report.Err = err
		return report
	}

	result, err := s.detector.Inspect(ctx, data)
	if err != nil {
		s.log.Error("could not inspect image", "path", path, "error", err)
		report.Err = err
		return report
	}
	report.Result = result

	switch result.Status {
	case entity.StatusDefective:
		s.log.Info("analysis result", "path", path, "status", result.Status,
			"defect_type", result.DefectType, "boundary", result.Boundary)
	case entity.StatusError:
		s.log.Error("analysis failed", "path", path, "reason", result.Reason)
	default:
		s.log.Info("analysis result", "path", path, "status", result.Status)
	}

	highlighted, err := s.detector.HighlightDefects(data, result)
	if err != nil {
		s.log.Error("could not render result", "path", path, "error", err)
		report.Err = err
		return report
	}

	out, err := s.store.Write(outName, highlighted)
	if err != nil {
		s.log.Error("could not save result", "path", path, "error", err)
		report.Err = err
		return report
	}
	report.Output = out
	s.log.Debug("saved result image", "path", out)

	return report
}

// resultName имя размеченного изображения: result_<имя файла>.jpg.
// Расширение исходного файла сохраняется, чтобы part.png и part.gif не совпали.
func resultName(path string) string {
	return "result_" + filepath.Base(path) + ".jpg"
}

// resultNames подбирает уникальные имена для всех файлов пакета. Одинаковые
// имена из разных каталогов получают суффикс _2, _3 и так далее.
func resultNames(files []string) []string {
	names := make([]string, len(files))
	used := make(map[string]bool, len(files))
	for i, path := range files {
		name := resultName(path)
		base := strings.TrimSuffix(name, ".jpg")
		for n := 2; used[name]; n++ {
			name = fmt.Sprintf("%s_%d.jpg", base, n)
		}
		used[name] = true
		names[i] = name
	}
	return names
}
