package types

type CliOption string

const (
	CliOptionDryRun    CliOption = "-n"
	CliOptionAutomatic CliOption = "-a"
)

// CliOptions is the immutable set of options recognised on the command line.
type CliOptions map[CliOption]struct{}

func NewCliOptions(options ...CliOption) CliOptions {
	set := CliOptions{}
	for _, option := range options {
		set[option] = struct{}{}
	}
	return set
}

func (o CliOptions) Has(option CliOption) bool {
	_, ok := o[option]
	return ok
}
