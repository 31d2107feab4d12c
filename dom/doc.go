// Package dom binds the page to the browser through syscall/js: elements,
// events, the native IntersectionObserver, the clipboard and the console.
//
// Everything except this file is built for js/wasm only.
package dom
