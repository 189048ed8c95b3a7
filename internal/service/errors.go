package service

import "errors"

// ErrKindImmutable is returned when an update tries to change an exercise's
// kind. Stored sessions measure one metric only.
var ErrKindImmutable = errors.New("exercise kind cannot be changed")

// ErrInvalidBackup wraps every validation problem found in a backup file.
var ErrInvalidBackup = errors.New("invalid backup file")

// ErrNameTaken is returned when an imported name already exists.
var ErrNameTaken = errors.New("name already exists")
