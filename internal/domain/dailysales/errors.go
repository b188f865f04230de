package dailysales

import "errors"

var ErrManagerOnly = errors.New("only managers can record daily sales")
