// Package config loads the rule table that drives logger resolution.
//
// The configuration is a properties file, by default named
// android-logger.properties and searched for in the working directory
// and next to the executable:
//
//	# root logger configuration
//	root=ERROR:MyApplication
//	# package / class logger configuration
//	logger.com.example.server=DEBUG:MyApplication-server
//
// Values follow the "LEVEL:tag" syntax with LEVEL one of VERBOSE, DEBUG,
// INFO, WARN, ERROR, ASSERT (exact, case-sensitive). A value without a
// recognizable level degrades to "whole value as tag, INFO level" rather
// than failing.
//
// Load never returns an error. Whatever goes wrong (file missing,
// unreadable, or empty) it reports the problem through the diagnostic
// logger and returns a single-entry table that routes everything to a
// VERBOSE root rule, so logging never goes silent because of its own
// configuration.
package config
