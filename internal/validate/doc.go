// Package validate holds the input contracts callers check before handing
// strings to the message registry. The registry itself assumes they hold.
package validate
