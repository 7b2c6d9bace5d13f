package underscore

// Tap calls fn(c) for side-effects and returns c for further chaining.
func (c *Container) Tap(fn func(*Container)) *Container {
	fn(c)
	return c
}

// When calls fn(c) if condition is true and returns the result.
// Otherwise returns c unchanged.
func (c *Container) When(condition bool, fn func(*Container) *Container) *Container {
	if condition {
		return fn(c)
	}
	return c
}

// Unless calls fn(c) if condition is false; otherwise returns c.
func (c *Container) Unless(condition bool, fn func(*Container) *Container) *Container {
	return c.When(!condition, fn)
}

// WhenEmpty calls fn(c) if c is empty; otherwise returns c.
func (c *Container) WhenEmpty(fn func(*Container) *Container) *Container {
	return c.When(c.IsEmpty(), fn)
}

// WhenNotEmpty calls fn(c) if c is not empty; otherwise returns c.
func (c *Container) WhenNotEmpty(fn func(*Container) *Container) *Container {
	return c.When(c.IsNotEmpty(), fn)
}
