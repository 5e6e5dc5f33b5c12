package model

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Fixed constraint messages, surfaced verbatim to the user.
const (
	MessageCourseCodeConstraints  = "Course codes should be 2 to 4 capital letters, then 4 digits, then an optional 1 to 2 letter suffix, e.g. CS2103T"
	MessageGroupNameConstraints   = "Group names should only contain letters, digits, '-' and '_', and should not contain whitespace"
	MessageSessionNameConstraints = "Session names should only contain letters, digits, '-' and '_', and should not contain whitespace"
	MessageStudentIDConstraints   = "Student IDs should start with 'A', followed by 7 digits and end with a capital letter, e.g. A0123456X"
	MessageNameConstraints        = "Names should only contain letters, spaces, apostrophes, hyphens and periods, and it should not be blank"
	MessagePhoneConstraints       = "Phone numbers should only contain digits, and it should be at least 3 digits long"
	MessageEmailConstraints       = "Emails should be of the format local-part@domain"
)

// ErrConstraintViolation matches every ConstraintViolation via errors.Is.
var ErrConstraintViolation = errors.New("constraint violation")

// ConstraintViolation reports an entity field that failed its format predicate.
type ConstraintViolation struct {
	Field   string
	Value   string
	Message string
}

func (e *ConstraintViolation) Error() string { return e.Message }

func (e *ConstraintViolation) Unwrap() error { return ErrConstraintViolation }

var (
	courseCodePattern = regexp.MustCompile(`^[A-Z]{2,4}[0-9]{4}[A-Z]{0,2}$`)
	entityNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	studentIDPattern  = regexp.MustCompile(`^A[0-9]{7}[A-Z]$`)
	personNamePattern = regexp.MustCompile(`^\p{L}[\p{L} .'-]*$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	for tag, re := range map[string]*regexp.Regexp{
		"coursecode": courseCodePattern,
		"entityname": entityNamePattern,
		"studentid":  studentIDPattern,
		"personname": personNamePattern,
	} {
		if err := v.RegisterValidation(tag, matches(re)); err != nil {
			panic(err)
		}
	}
	return v
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// IsValidCourseCode reports whether code is a well-formed course code.
func IsValidCourseCode(code string) bool {
	return validate.Var(code, "required,coursecode") == nil
}

// IsValidGroupName reports whether name is a non-blank group name without whitespace.
func IsValidGroupName(name string) bool {
	return validate.Var(name, "required,entityname") == nil
}

// IsValidSessionName follows the group name rule.
func IsValidSessionName(name string) bool {
	return validate.Var(name, "required,entityname") == nil
}

// IsValidStudentID reports whether id is a well-formed matriculation number.
func IsValidStudentID(id string) bool {
	return validate.Var(id, "required,studentid") == nil
}

// studentFieldMessages maps struct fields to the message reported when they fail.
var studentFieldMessages = map[string]string{
	"ID":    MessageStudentIDConstraints,
	"Name":  MessageNameConstraints,
	"Phone": MessagePhoneConstraints,
	"Email": MessageEmailConstraints,
}

func studentViolation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	value, _ := fe.Value().(string)
	return &ConstraintViolation{Field: fe.StructField(), Value: value, Message: studentFieldMessages[fe.StructField()]}
}
