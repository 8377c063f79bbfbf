package port

// ImageStore источник изображений и приёмник результатов для пакетной проверки
type ImageStore interface {
	// List раскрывает каталоги и возвращает пути к изображениям
	List(paths []string) ([]string, error)

	// Read читает изображение
	Read(path string) ([]byte, error)

	// Write сохраняет размеченное изображение под именем name
	Write(name string, data []byte) (string, error)
}
