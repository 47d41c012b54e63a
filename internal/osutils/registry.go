package osutils

// RegistryKey abstracts read access to a single Windows registry key, so that
// code consulting the registry can be exercised on platforms that do not have
// one.
type RegistryKey interface {
	GetStringValue(name string) (val string, valtype uint32, err error)
	Close() error
}
