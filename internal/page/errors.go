package page

import "errors"

// ErrTemplateNotFound is returned when the template file cannot be opened.
var ErrTemplateNotFound = errors.New("template not found")

// ErrTemplateSyntax indicates the template could not be parsed or executed.
var ErrTemplateSyntax = errors.New("invalid template")
