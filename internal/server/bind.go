package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

const maxBodyBytes = 1 << 20

// binder decodes JSON bodies and validates them with English messages.
type binder struct {
	validate   *validator.Validate
	translator ut.Translator
}

func newBinder() *binder {
	enLoc := en.New()
	uni := ut.New(enLoc, enLoc)
	trans, _ := uni.GetTranslator("en")

	v := validator.New(validator.WithRequiredStructEnabled())

	// prefer json tag names in messages
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		tag := fld.Tag.Get("json")
		if tag == "-" || tag == "" {
			return fld.Name
		}
		if idx := strings.Index(tag, ","); idx >= 0 {
			tag = tag[:idx]
		}
		return tag
	})

	_ = en_translations.RegisterDefaultTranslations(v, trans)

	return &binder{validate: v, translator: trans}
}

// bindError carries the error code a failed bind maps to.
type bindError struct {
	code ErrorCode
	msg  string
}

func (e *bindError) Error() string { return e.msg }

// bindJSON decodes the request body into dst and validates it.
// Errors are *bindError.
func (b *binder) bindJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return &bindError{code: CodeJSON, msg: "request body is empty"}
		}
		return &bindError{code: CodeJSON, msg: fmt.Sprintf("invalid JSON body: %v", err)}
	}
	if dec.More() {
		return &bindError{code: CodeJSON, msg: "request body must contain a single JSON object"}
	}

	if err := b.validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return &bindError{code: CodeValidation, msg: b.translate(verrs)}
		}
		return &bindError{code: CodeValidation, msg: err.Error()}
	}
	return nil
}

// translate joins translated field errors in a stable order.
func (b *binder) translate(verrs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(verrs))
	for _, msg := range verrs.Translate(b.translator) {
		msgs = append(msgs, msg)
	}
	sort.Strings(msgs)
	return strings.Join(msgs, "; ")
}
