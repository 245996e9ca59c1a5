// Copyright (c) HashiCorp, Inc.

package query

// findOptions controls Find's traversal-time error policy.
type findOptions struct {
	strictPredicates bool
}

// Option configures a Find call.
type Option func(*findOptions) error

func getDefaultFindOptions() findOptions {
	return findOptions{}
}

func getFindOpts(opt ...Option) (findOptions, error) {
	opts := getDefaultFindOptions()
	for _, o := range opt {
		if err := o(&opts); err != nil {
			return opts, err
		}
	}
	return opts, nil
}

// WithStrictPredicates requests that predicate-argument and match-time
// failures during traversal propagate as errors instead of being swallowed
// to false, overriding the default on_exception=false policy.
func WithStrictPredicates() Option {
	return func(o *findOptions) error {
		o.strictPredicates = true
		return nil
	}
}

// getOptions controls Get's default value and error policy.
type getOptions struct {
	defaultValue any
	onException  bool
}

// GetOption configures a Get call.
type GetOption func(*getOptions) error

func getDefaultGetOptions() getOptions {
	return getOptions{defaultValue: nil, onException: false}
}

func getGetOpts(opt ...GetOption) (getOptions, error) {
	opts := getDefaultGetOptions()
	for _, o := range opt {
		if err := o(&opts); err != nil {
			return opts, err
		}
	}
	return opts, nil
}

// WithDefault sets the value Get returns when index is absent or out of
// range and on_exception is not requested.
func WithDefault(v any) GetOption {
	return func(o *getOptions) error {
		o.defaultValue = v
		return nil
	}
}

// WithGetException requests that Get return a *tree-shape* or *not-found*
// error instead of the default value.
func WithGetException() GetOption {
	return func(o *getOptions) error {
		o.onException = true
		return nil
	}
}
