// Package logger provides a small factory over log/slog with consistent
// formats and attribute helpers for the rest of the module.
//
// The factory produces either human-readable text logs for development or
// JSON for production aggregation, selected through options. Attribute
// helpers (Error, Component, Username, UserID) keep record keys consistent
// across packages.
//
// # Usage
//
//	log := logger.New(logger.WithProduction("authd"))
//
//	log.Info("user registered",
//	    logger.Username(username),
//	    logger.Component("credstore"),
//	)
//
// Library packages default to logger.Discard() so logging stays opt-in for
// callers.
package logger
