// Package environment resolves and propagates the application environment
// (development, staging, production).
//
// FromEnv reads APP_ENV as an enumeration value, accepting the canonical names
// and the short forms dev, stage and prod, and defaults to Development:
//
//	en, err := environment.FromEnv(nil) // process environment
//	if err != nil {
//	    log.Fatal(err) // APP_ENV holds an unknown name
//	}
//	log := environment.Logger(en, "billing")
//	ctx := environment.WithContext(context.Background(), en)
//
// The value can be attached to a context with WithContext, extracted with
// FromContext and queried with IsDevelopment, IsStaging and IsProduction.
package environment
