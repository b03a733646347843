// Package errs defines the error kinds reported by argus. Every kind is a sentinel
// *Error; instances carrying details are derived with WithArgs and Wrap and still
// match their sentinel under errors.Is.
package errs

// Schema compilation errors. A compiled schema failure is always reported as
// ErrSchema wrapping one of the specific kinds below.
var (
	ErrSchema                  = New(ErrSchemaKey, "invalid schema")
	ErrMissingName             = New(ErrMissingNameKey, "%s declared without a name")
	ErrInvalidName             = New(ErrInvalidNameKey, "'%s' is not a valid %s name")
	ErrDuplicateName           = New(ErrDuplicateNameKey, "name '%s' of '%s' is already used by '%s'")
	ErrUnresolvedReference     = New(ErrUnresolvedReferenceKey, "option '%s': %s reference '%s' does not resolve to an option in scope")
	ErrSelfReference           = New(ErrSelfReferenceKey, "option '%s' references itself in %s")
	ErrInvalidGroup            = New(ErrInvalidGroupKey, "group '%s': %s")
	ErrPositionalOrder         = New(ErrPositionalOrderKey, "positional '%s': %s")
	ErrSubcommandCollision     = New(ErrSubcommandCollisionKey, "subcommand '%s' is declared more than once")
	ErrInvalidOption           = New(ErrInvalidOptionKey, "option '%s': %s")
	ErrTooManyValidators       = New(ErrTooManyValidatorsKey, "option '%s' declares %d validators, at most %d are allowed")
	ErrUnsupportedValidator    = New(ErrUnsupportedValidatorKey, "option '%s': validator %s does not apply to %s values")
	ErrInvalidDefault          = New(ErrInvalidDefaultKey, "option '%s': invalid default '%s'")
	ErrInvalidChoice           = New(ErrInvalidChoiceKey, "option '%s': choice '%s' is not a %s value")
	ErrConfiguringOption       = New(ErrConfiguringOptionKey, "configuring option '%s'")
	ErrInvalidValidatorSpec    = New(ErrInvalidValidatorSpecKey, "invalid validator spec '%s'")
	ErrUnknownValidator        = New(ErrUnknownValidatorKey, "unknown validator '%s'")
	ErrInvalidPattern          = New(ErrInvalidPatternKey, "invalid pattern '%s'")
	ErrUnsupportedSchemaFormat = New(ErrUnsupportedSchemaFormatKey, "unsupported schema format '%s'")
)

// Parsing errors
var (
	ErrUnknownToken            = New(ErrUnknownTokenKey, "unknown option '%s'")
	ErrUnexpectedPositional    = New(ErrUnexpectedPositionalKey, "unexpected positional argument '%s'")
	ErrMissingValue            = New(ErrMissingValueKey, "option '%s' expects a value")
	ErrUnexpectedValue         = New(ErrUnexpectedValueKey, "option '%s' does not take a value")
	ErrCoercion                = New(ErrCoercionKey, "option '%s': cannot convert '%s' to %s")
	ErrChoiceViolation         = New(ErrChoiceViolationKey, "option '%s': '%s' is not one of [%s]")
	ErrValidatorFailure        = New(ErrValidatorFailureKey, "option '%s': value '%s' violates %s")
	ErrRequiredMissing         = New(ErrRequiredMissingKey, "required option '%s' is missing")
	ErrDependencyMissing       = New(ErrDependencyMissingKey, "option '%s' requires %s")
	ErrConflictPresent         = New(ErrConflictPresentKey, "option '%s' conflicts with '%s'")
	ErrExclusiveGroupViolation = New(ErrExclusiveGroupViolationKey, "only one option of group '%s' may be set, got %s")
	ErrExitRequested           = New(ErrExitRequestedKey, "option '%s' requested exit")
)

// Value errors
var (
	ErrUnknownValueKind = New(ErrUnknownValueKindKey, "unknown value kind '%v'")
	ErrWrongKind        = New(ErrWrongKindKey, "value is %v, not %v")
	ErrInvalidNumber    = New(ErrInvalidNumberKey, "invalid syntax")
	ErrOutOfBounds      = New(ErrOutOfBoundsKey, "value out of range")
	ErrNotANumber       = New(ErrNotANumberKey, "NaN is not accepted")
	ErrInvalidBool      = New(ErrInvalidBoolKey, "expected one of true, false, 1, 0, yes, no")
	ErrMissingSeparator = New(ErrMissingSeparatorKey, "expected key=value")
	ErrEmptyKey         = New(ErrEmptyKeyKey, "empty key")
)

// Validator errors
var (
	ErrValueBetween       = New(ErrValueBetweenKey, "%v is not between %v and %v")
	ErrLengthBetween      = New(ErrLengthBetweenKey, "length %d is not between %d and %d")
	ErrCountBetween       = New(ErrCountBetweenKey, "count %d is not between %d and %d")
	ErrPatternMismatch    = New(ErrPatternMismatchKey, "'%s' does not match %s")
	ErrNotNumeric         = New(ErrNotNumericKey, "%s is not numeric")
	ErrNotCollection      = New(ErrNotCollectionKey, "%s is not a collection")
	ErrValidationCombined = New(ErrValidationCombinedKey, "no validator passed: %s")
	ErrCustomValidation   = New(ErrCustomValidationKey, "%s failed")
)

// Result context errors
var (
	ErrReleased       = New(ErrReleasedKey, "context already released")
	ErrOptionNotFound = New(ErrOptionNotFoundKey, "option '%s' not found")
	ErrOptionNotSet   = New(ErrOptionNotSetKey, "option '%s' is not set")
	ErrNoAction       = New(ErrNoActionKey, "subcommand '%s' has no action")
)
