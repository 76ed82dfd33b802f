// Package bean copies properties between struct values by field name.
//
// A property is an exported struct field, including fields promoted from
// embedded structs. The `bean` struct tag renames a property (`bean:"id"`),
// hides it (`bean:"-"`) or marks it as the record's type tag (`bean:",type"`),
// which is never copied and never counted by AllFieldsAbsent.
//
//	var dto UserDTO
//	if err := bean.CopyInto(user, &dto, bean.SkipNull); err != nil {
//	    return err
//	}
//
//	dtos, err := bean.CopyList(users, func() *UserDTO { return &UserDTO{} })
//
// Values are assigned as-is: there is no type coercion and no recursion into
// nested structs, so pointer, slice and map fields are shared with the source.
package bean
