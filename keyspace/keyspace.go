// Package keyspace defines how logical keys map to backend keys. A backend
// key is the namespace and the logical key joined by the separator, so every
// engine sharing one backend stays isolated by prefix alone.
//
// Namespaces and logical keys must be non-empty and must not contain the
// separator. That restriction makes the (namespace, key) -> backend key
// mapping a bijection: without it, key "a.b" in namespace "ns" would collide
// with key "b" in namespace "ns.a".
package keyspace

import (
	"fmt"
	"strings"
)

// Separator joins a namespace and a logical key into a backend key.
const Separator = "."

// BackendKey derives the backend key for a logical key within a namespace.
func BackendKey(namespace, key string) (string, error) {
	if err := ValidateNamespace(namespace); err != nil {
		return "", err
	}
	if err := ValidateKey(key); err != nil {
		return "", err
	}
	return namespace + Separator + key, nil
}

// InNamespace reports whether backendKey belongs to namespace: it must start
// with the namespace prefix and carry a non-empty remainder.
func InNamespace(namespace, backendKey string) bool {
	prefix := namespace + Separator
	return len(backendKey) > len(prefix) && strings.HasPrefix(backendKey, prefix)
}

// LogicalKey strips the namespace prefix from a backend key. It is the
// inverse of BackendKey and fails with ErrForeignKey when the key does not
// belong to the namespace.
func LogicalKey(namespace, backendKey string) (string, error) {
	if !InNamespace(namespace, backendKey) {
		return "", fmt.Errorf("%w: %q is not in namespace %q", ErrForeignKey, backendKey, namespace)
	}
	return backendKey[len(namespace)+len(Separator):], nil
}

// ValidateNamespace checks that a namespace is usable as a key prefix.
func ValidateNamespace(namespace string) error {
	if namespace == "" {
		return fmt.Errorf("%w: namespace is empty", ErrInvalidKey)
	}
	if strings.Contains(namespace, Separator) {
		return fmt.Errorf("%w: namespace %q contains separator %q", ErrInvalidKey, namespace, Separator)
	}
	return nil
}

// ValidateKey checks that a logical key can be prefixed unambiguously.
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("%w: key is empty", ErrInvalidKey)
	}
	if strings.Contains(key, Separator) {
		return fmt.Errorf("%w: key %q contains separator %q", ErrInvalidKey, key, Separator)
	}
	return nil
}
