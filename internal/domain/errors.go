package domain

import "errors"

var ErrRecordNotFound = errors.New("Record not found")
var ErrNegativeAmount = errors.New("Amount must not be negative")
var ErrNoParticipants = errors.New("Transaction must involve at least one account")
var ErrInvalidAccountType = errors.New("Invalid account type")
