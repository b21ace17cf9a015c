package handler

import "admin-backend/pkg/storage"

// Upload limits for image fields.
const (
	MaxProductImageSize = 2 * 1024 * 1024
	MaxGSTImageSize     = 4 * 1024 * 1024
	MaxGSTImages        = 5
)

var store *storage.Store

// Init wires the file store the upload handlers persist images through
func Init(s *storage.Store) {
	store = s
}
