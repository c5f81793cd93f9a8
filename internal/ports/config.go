package ports

type ConfigPort interface {
	Require(key string) (string, error)
}
