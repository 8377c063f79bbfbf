package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"ring-inspector/internal/domain/port"
	apperrors "ring-inspector/internal/errors"
)

// imageExtensions расширения, которые считаются изображениями при обходе каталогов
var imageExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".bmp": true,
	".tif": true, ".tiff": true, ".gif": true, ".webp": true,
}

// FileImageStore читает изображения с диска и пишет результаты в каталог
type FileImageStore struct {
	outputDir string
	dryRun    bool
}

// NewFileImageStore создаёт хранилище. В режиме dryRun результаты не пишутся.
func NewFileImageStore(outputDir string, dryRun bool) *FileImageStore {
	return &FileImageStore{outputDir: outputDir, dryRun: dryRun}
}

// List раскрывает каталоги (без рекурсии) и оставляет файлы как есть
func (s *FileImageStore) List(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, apperrors.NewReadFailedError(p, err)
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}

		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, apperrors.NewReadFailedError(p, err)
		}
		var dirFiles []string
		for _, e := range entries {
			if e.IsDir() || !imageExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
				continue
			}
			dirFiles = append(dirFiles, filepath.Join(p, e.Name()))
		}
		sort.Strings(dirFiles)
		files = append(files, dirFiles...)
	}
	return files, nil
}

// Read читает файл целиком
func (s *FileImageStore) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewReadFailedError(path, err)
	}
	return data, nil
}

// Write сохраняет данные в выходной каталог и возвращает путь
func (s *FileImageStore) Write(name string, data []byte) (string, error) {
	path := filepath.Join(s.outputDir, filepath.Base(name))
	if s.dryRun {
		return path, nil
	}
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return "", apperrors.NewWriteFailedError(path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", apperrors.NewWriteFailedError(path, fmt.Errorf("write: %w", err))
	}
	return path, nil
}

// Проверка реализации интерфейса
var _ port.ImageStore = (*FileImageStore)(nil)
