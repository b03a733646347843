package errs

// Prefix for all argus error keys
const (
	prefixKey = "argus"
)

// Error prefixes
const (
	ErrorPrefixKey    = prefixKey + ".error"
	SchemaPrefixKey   = ErrorPrefixKey + ".schema"
	ParsePrefixKey    = ErrorPrefixKey + ".parse"
	ValuePrefixKey    = ErrorPrefixKey + ".value"
	ValidatePrefixKey = ErrorPrefixKey + ".validation"
	ContextPrefixKey  = ErrorPrefixKey + ".context"
)

// Schema compilation keys
const (
	ErrSchemaKey                  = SchemaPrefixKey
	ErrMissingNameKey             = SchemaPrefixKey + ".missing_name"
	ErrInvalidNameKey             = SchemaPrefixKey + ".invalid_name"
	ErrDuplicateNameKey           = SchemaPrefixKey + ".duplicate_name"
	ErrUnresolvedReferenceKey     = SchemaPrefixKey + ".unresolved_reference"
	ErrSelfReferenceKey           = SchemaPrefixKey + ".self_reference"
	ErrInvalidGroupKey            = SchemaPrefixKey + ".invalid_group"
	ErrPositionalOrderKey         = SchemaPrefixKey + ".positional_order"
	ErrSubcommandCollisionKey     = SchemaPrefixKey + ".subcommand_collision"
	ErrInvalidOptionKey           = SchemaPrefixKey + ".invalid_option"
	ErrTooManyValidatorsKey       = SchemaPrefixKey + ".too_many_validators"
	ErrUnsupportedValidatorKey    = SchemaPrefixKey + ".unsupported_validator"
	ErrInvalidDefaultKey          = SchemaPrefixKey + ".invalid_default"
	ErrInvalidChoiceKey           = SchemaPrefixKey + ".invalid_choice"
	ErrConfiguringOptionKey       = SchemaPrefixKey + ".configuring_option"
	ErrInvalidValidatorSpecKey    = SchemaPrefixKey + ".invalid_validator_spec"
	ErrUnknownValidatorKey        = SchemaPrefixKey + ".unknown_validator"
	ErrInvalidPatternKey          = SchemaPrefixKey + ".invalid_pattern"
	ErrUnsupportedSchemaFormatKey = SchemaPrefixKey + ".unsupported_format"
)

// Parse-time keys
const (
	ErrUnknownTokenKey            = ParsePrefixKey + ".unknown_token"
	ErrUnexpectedPositionalKey    = ParsePrefixKey + ".unexpected_positional"
	ErrMissingValueKey            = ParsePrefixKey + ".missing_value"
	ErrUnexpectedValueKey         = ParsePrefixKey + ".unexpected_value"
	ErrCoercionKey                = ParsePrefixKey + ".coercion"
	ErrChoiceViolationKey         = ParsePrefixKey + ".choice_violation"
	ErrValidatorFailureKey        = ParsePrefixKey + ".validator_failure"
	ErrRequiredMissingKey         = ParsePrefixKey + ".required_missing"
	ErrDependencyMissingKey       = ParsePrefixKey + ".dependency_missing"
	ErrConflictPresentKey         = ParsePrefixKey + ".conflict_present"
	ErrExclusiveGroupViolationKey = ParsePrefixKey + ".exclusive_group_violation"
	ErrExitRequestedKey           = ParsePrefixKey + ".exit_requested"
)

// Value keys
const (
	ErrUnknownValueKindKey = ValuePrefixKey + ".unknown_kind"
	ErrWrongKindKey        = ValuePrefixKey + ".wrong_kind"
	ErrInvalidNumberKey    = ValuePrefixKey + ".invalid_number"
	ErrOutOfBoundsKey      = ValuePrefixKey + ".out_of_bounds"
	ErrNotANumberKey       = ValuePrefixKey + ".nan"
	ErrInvalidBoolKey      = ValuePrefixKey + ".invalid_bool"
	ErrMissingSeparatorKey = ValuePrefixKey + ".missing_separator"
	ErrEmptyKeyKey         = ValuePrefixKey + ".empty_key"
)

// Validator keys
const (
	ErrValueBetweenKey       = ValidatePrefixKey + ".value_between"
	ErrLengthBetweenKey      = ValidatePrefixKey + ".length_between"
	ErrCountBetweenKey       = ValidatePrefixKey + ".count_between"
	ErrPatternMismatchKey    = ValidatePrefixKey + ".pattern_mismatch"
	ErrNotNumericKey         = ValidatePrefixKey + ".not_numeric"
	ErrNotCollectionKey      = ValidatePrefixKey + ".not_collection"
	ErrValidationCombinedKey = ValidatePrefixKey + ".combined_failed"
	ErrCustomValidationKey   = ValidatePrefixKey + ".custom_failed"
)

// Result context keys
const (
	ErrReleasedKey       = ContextPrefixKey + ".released"
	ErrOptionNotFoundKey = ContextPrefixKey + ".option_not_found"
	ErrOptionNotSetKey   = ContextPrefixKey + ".option_not_set"
	ErrNoActionKey       = ContextPrefixKey + ".no_action"
)
