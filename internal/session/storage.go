// Package session - "локальное хранилище" клиента: пара строковых
// записей под фиксированными ключами, переживающая перезапуск процесса.
package session

import (
	"encoding/json"
	"errors"
	"os"
	"sync"
)

// Фиксированные ключи хранилища
const (
	KeyUser  = "user"
	KeyToken = "token"
)

// Storage - файловый key-value. Каждый Set/Delete сразу пишется на диск.
type Storage struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

// NewStorage открывает хранилище, подхватывая существующий файл.
// Пустой путь дает чисто-in-memory хранилище (тесты).
func NewStorage(path string) (*Storage, error) {
	s := &Storage{
		path:   path,
		values: make(map[string]string),
	}

	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, &s.values); err != nil {
		// Битый файл считаем пустым хранилищем
		s.values = make(map[string]string)
	}
	return s, nil
}

// Get возвращает значение ключа, пустую строку если его нет
func (s *Storage) Get(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[key]
}

func (s *Storage) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return s.flush()
}

func (s *Storage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return s.flush()
}

// Clear удаляет все записи
func (s *Storage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values = make(map[string]string)
	return s.flush()
}

// flush вызывается только под блокировкой
func (s *Storage) flush() error {
	if s.path == "" {
		return nil
	}

	data, err := json.Marshal(s.values)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}
