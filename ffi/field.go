//go:build cgo

package ffi

/*
#include <stdint.h>
#include <string.h>

#ifndef ARROW_C_DATA_INTERFACE
#define ARROW_C_DATA_INTERFACE

struct ArrowSchema {
  const char* format;
  const char* name;
  const char* metadata;
  int64_t flags;
  int64_t n_children;
  struct ArrowSchema** children;
  struct ArrowSchema* dictionary;
  void (*release)(struct ArrowSchema*);
  void* private_data;
};

#endif

// Moves the first child of parent into out, then releases parent.
static void move_first_child(struct ArrowSchema* parent, struct ArrowSchema* out) {
  struct ArrowSchema* child = parent->children[0];
  memcpy(out, child, sizeof(struct ArrowSchema));
  child->release = NULL;
  parent->release(parent);
}
*/
import "C"

import (
	"unsafe"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/cdata"
)

// ExportField fills out with field, keeping its name and nullability.
// cdata only exports fields as members of a schema, so the field is
// exported inside a one field schema and moved out of it.
func ExportField(field arrow.Field, out *cdata.CArrowSchema) {
	var parent cdata.CArrowSchema
	cdata.ExportArrowSchema(arrow.NewSchema([]arrow.Field{field}, nil), &parent)
	C.move_first_child((*C.struct_ArrowSchema)(unsafe.Pointer(&parent)), (*C.struct_ArrowSchema)(unsafe.Pointer(out)))
}
