package config

// CaseFileNames are searched for, in order, when no case file is given.
var CaseFileNames = []string{"devirt.yaml", "devirt.yml"}

// CaseFileExtensions are all recognized case file extensions.
var CaseFileExtensions = []string{".yaml", ".yml", ".json"}

// Dispatched method names
const (
	CompareToMethod = "compareTo"
	EqualsMethod    = "equals"
	HashCodeMethod  = "hashCode"
	ToStringMethod  = "toString"
)

// MethodNames lists every dispatched method in registration order.
var MethodNames = []string{CompareToMethod, EqualsMethod, HashCodeMethod, ToStringMethod}

// Ordering expectations accepted in case files
const (
	ExpectNegative = "negative"
	ExpectZero     = "zero"
	ExpectPositive = "positive"
)

// Keys of object values in case files
const (
	UUIDKey      = "uuid"
	BoxedKey     = "boxed"
	ValueKey     = "value"
	UndefinedKey = "undefined"
)

// Boxed type names accepted under BoxedKey
const (
	BoxedDouble  = "double"
	BoxedBoolean = "boolean"
	BoxedString  = "string"
)

// Environment variables
const (
	NoColorEnv = "NO_COLOR"
	DebugEnv   = "DEVIRT_DEBUG"
)

// DefaultWorkers bounds concurrent case evaluation when -j is not given.
const DefaultWorkers = 4
