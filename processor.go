package unravel

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/zoobzio/sentinel"
)

// decodeTag is the struct tag naming the transform for a field.
const decodeTag = "decode"

func init() {
	sentinel.Tag(decodeTag)
}

// Processor decodes tagged fields of records read through a Codec.
//
//	type Event struct {
//	    Payload string            `json:"payload" decode:"smart"`
//	    Args    []string          `json:"args" decode:"base64"`
//	    Headers map[string]string `json:"headers" decode:"url"`
//	}
//
// Processors are safe for concurrent use.
type Processor[T Cloner[T]] struct {
	codec    Codec
	engine   *Engine
	fields   []fieldPlan
	typeName string
}

// fieldPlan describes how to decode a single field.
type fieldPlan struct {
	index      []int     // reflect.Value.FieldByIndex access path
	name       string    // field name for error messages
	transform  Transform // tag value
	isBytes    bool      // true if field is []byte
	ptrIndices []int     // indices where pointer dereference is needed
	isSlice    bool      // true if field is []string
	isMap      bool      // true if field is map[K]string
}

// typePlans caches field plans per record type.
type typePlans struct {
	typeName string
	fields   []fieldPlan
}

var (
	planCache   = make(map[reflect.Type]*typePlans)
	planCacheMu sync.RWMutex
)

// NewProcessor creates a Processor for type T.
// Tags naming an unknown transform fail with ErrInvalidTag.
func NewProcessor[T Cloner[T]](codec Codec, opts ...Option) (*Processor[T], error) {
	plans, err := getOrBuildPlans[T]()
	if err != nil {
		return nil, err
	}

	p := &Processor[T]{
		codec:    codec,
		engine:   New(opts...),
		fields:   plans.fields,
		typeName: plans.typeName,
	}

	emitProcessorCreated(context.Background(), codec.ContentType(), plans.typeName)
	return p, nil
}

// Engine returns the engine the processor decodes with.
func (p *Processor[T]) Engine() *Engine {
	return p.engine
}

// Fields returns the names of the fields the processor decodes.
func (p *Processor[T]) Fields() []string {
	names := make([]string, len(p.fields))
	for i, f := range p.fields {
		names[i] = f.name
	}
	return names
}

// getOrBuildPlans returns cached field plans for T, scanning it on first use.
func getOrBuildPlans[T Cloner[T]]() (*typePlans, error) {
	typ := reflect.TypeFor[T]()

	planCacheMu.RLock()
	if cached, ok := planCache[typ]; ok {
		planCacheMu.RUnlock()
		return cached, nil
	}
	planCacheMu.RUnlock()

	plans, err := buildFieldPlans[T]()
	if err != nil {
		return nil, err
	}

	planCacheMu.Lock()
	planCache[typ] = plans
	planCacheMu.Unlock()
	return plans, nil
}

// buildFieldPlans creates field plans for type T by scanning struct tags.
func buildFieldPlans[T Cloner[T]]() (*typePlans, error) {
	spec := sentinel.Scan[T]()
	plans := &typePlans{typeName: spec.TypeName}

	if err := buildFieldPlansRecursive(plans, spec, nil, nil, ""); err != nil {
		return nil, err
	}
	return plans, nil
}

// buildFieldPlansRecursive processes fields and nested structs.
func buildFieldPlansRecursive(plans *typePlans, spec sentinel.Metadata, parentIndex, ptrIndices []int, namePrefix string) error {
	for _, field := range spec.Fields {
		fullIndex := append(append([]int{}, parentIndex...), field.Index...)
		fullName := field.Name
		if namePrefix != "" {
			fullName = namePrefix + "." + field.Name
		}

		if field.Kind == sentinel.KindStruct {
			if nested := scanNestedType(field.ReflectType); nested != nil {
				if err := buildFieldPlansRecursive(plans, *nested, fullIndex, ptrIndices, fullName); err != nil {
					return err
				}
			}
			continue
		}

		if field.Kind == sentinel.KindPointer && field.ReflectType.Elem().Kind() == reflect.Struct {
			if nested := scanNestedType(field.ReflectType.Elem()); nested != nil {
				newPtrIndices := append(append([]int{}, ptrIndices...), len(fullIndex)-1)
				if err := buildFieldPlansRecursive(plans, *nested, fullIndex, newPtrIndices, fullName); err != nil {
					return err
				}
			}
			continue
		}

		val, ok := field.Tags[decodeTag]
		if !ok {
			continue
		}
		t := Transform(val)
		if !IsValidTransform(t) {
			return fmt.Errorf("%w: unknown transform %q for field %s", ErrInvalidTag, val, fullName)
		}

		rt := field.ReflectType
		isString := rt.Kind() == reflect.String
		isBytes := rt.Kind() == reflect.Slice && rt.Elem().Kind() == reflect.Uint8
		isStringSlice := rt.Kind() == reflect.Slice && rt.Elem().Kind() == reflect.String
		isStringMap := rt.Kind() == reflect.Map && rt.Elem().Kind() == reflect.String

		if !isString && !isBytes && !isStringSlice && !isStringMap {
			return fmt.Errorf("%w: field %s has type %s, want string, []byte, []string or map[K]string", ErrInvalidTag, fullName, rt)
		}

		plans.fields = append(plans.fields, fieldPlan{
			index:      fullIndex,
			name:       fullName,
			transform:  t,
			isBytes:    isBytes,
			ptrIndices: ptrIndices,
			isSlice:    isStringSlice,
			isMap:      isStringMap,
		})
	}
	return nil
}

// scanNestedType returns metadata for a nested struct type.
func scanNestedType(rt reflect.Type) *sentinel.Metadata {
	if spec, ok := sentinel.Lookup(rt.String()); ok {
		return &spec
	}

	if rt.Kind() != reflect.Struct {
		return nil
	}

	spec := sentinel.Metadata{
		TypeName:    rt.Name(),
		PackageName: rt.PkgPath(),
		Fields:      make([]sentinel.FieldMetadata, 0, rt.NumField()),
	}

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		fm := sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
			Tags:        map[string]string{},
		}
		if val, ok := sf.Tag.Lookup(decodeTag); ok {
			fm.Tags[decodeTag] = val
		}

		switch sf.Type.Kind() {
		case reflect.Struct:
			fm.Kind = sentinel.KindStruct
		case reflect.Ptr:
			fm.Kind = sentinel.KindPointer
		case reflect.Slice, reflect.Array:
			fm.Kind = sentinel.KindSlice
		case reflect.Map:
			fm.Kind = sentinel.KindMap
		case reflect.Interface:
			fm.Kind = sentinel.KindInterface
		default:
			fm.Kind = sentinel.KindScalar
		}

		spec.Fields = append(spec.Fields, fm)
	}

	return &spec
}

// Load unmarshals data and decodes the tagged fields.
func (p *Processor[T]) Load(ctx context.Context, data []byte) (*T, error) {
	start := time.Now()
	emitProcessStart(ctx, p.codec.ContentType(), p.typeName)

	var retErr error
	defer func() {
		emitProcessComplete(ctx, p.codec.ContentType(), p.typeName,
			time.Since(start), len(p.fields), retErr)
	}()

	var obj T
	if err := p.codec.Unmarshal(data, &obj); err != nil {
		retErr = newCodecError(ErrUnmarshal, err)
		return nil, retErr
	}

	if err := p.decode(ctx, &obj); err != nil {
		retErr = err
		return nil, retErr
	}
	return &obj, nil
}

// Apply decodes the tagged fields of a clone of obj. obj is not modified.
func (p *Processor[T]) Apply(ctx context.Context, obj *T) (*T, error) {
	if obj == nil {
		return nil, nil
	}

	start := time.Now()
	emitProcessStart(ctx, p.codec.ContentType(), p.typeName)

	clone := (*obj).Clone()
	err := p.decode(ctx, &clone)
	emitProcessComplete(ctx, p.codec.ContentType(), p.typeName,
		time.Since(start), len(p.fields), err)
	if err != nil {
		return nil, err
	}
	return &clone, nil
}

// Transcode unmarshals data, decodes the tagged fields and marshals the
// result with the same codec.
func (p *Processor[T]) Transcode(ctx context.Context, data []byte) ([]byte, error) {
	obj, err := p.Load(ctx, data)
	if err != nil {
		return nil, err
	}
	out, err := p.codec.Marshal(obj)
	if err != nil {
		return nil, newCodecError(ErrMarshal, err)
	}
	return out, nil
}

// decode applies the override interface or the field plans to obj.
func (p *Processor[T]) decode(ctx context.Context, obj *T) error {
	if d, ok := any(obj).(Decodable); ok {
		return d.DecodeFields(p.engine)
	}
	return p.applyPlans(ctx, obj)
}

// applyPlans decodes fields via reflection.
func (p *Processor[T]) applyPlans(ctx context.Context, obj *T) error {
	rv := reflect.ValueOf(obj).Elem()

	for _, plan := range p.fields {
		field, ok := p.getField(rv, plan)
		if !ok {
			continue
		}

		if plan.isSlice {
			for i := 0; i < field.Len(); i++ {
				elem := field.Index(i)
				if !elem.CanSet() {
					continue
				}
				out, err := p.decodeValue(ctx, plan, fmt.Sprintf("%s[%d]", plan.name, i), elem.String())
				if err != nil {
					return err
				}
				elem.SetString(out)
			}
			continue
		}

		if plan.isMap {
			iter := field.MapRange()
			for iter.Next() {
				k, v := iter.Key(), iter.Value()
				out, err := p.decodeValue(ctx, plan, fmt.Sprintf("%s[%v]", plan.name, k.Interface()), v.String())
				if err != nil {
					return err
				}
				field.SetMapIndex(k, reflect.ValueOf(out).Convert(field.Type().Elem()))
			}
			continue
		}

		if !field.CanSet() {
			continue
		}

		var value string
		if plan.isBytes {
			value = string(field.Bytes())
		} else {
			value = field.String()
		}

		out, err := p.decodeValue(ctx, plan, plan.name, value)
		if err != nil {
			return err
		}

		if plan.isBytes {
			field.SetBytes([]byte(out))
		} else {
			field.SetString(out)
		}
	}
	return nil
}

// decodeValue runs the field's transform. Smart fields receive the body
// without a banner; empty values are left alone.
func (p *Processor[T]) decodeValue(ctx context.Context, plan fieldPlan, name, value string) (string, error) {
	if value == "" {
		return value, nil
	}
	if plan.transform == TransformSmart {
		return p.engine.Smart(ctx, value).Body, nil
	}

	out, err := p.engine.Decode(ctx, plan.transform, value)
	if err != nil {
		var te *TransformError
		if errors.As(err, &te) {
			withField := *te
			withField.Field = name
			return "", &withField
		}
		return "", fmt.Errorf("decode field %s: %w", name, err)
	}
	return out, nil
}

// getField navigates a field path, dereferencing pointers as needed.
func (p *Processor[T]) getField(rv reflect.Value, plan fieldPlan) (reflect.Value, bool) {
	if len(plan.ptrIndices) == 0 {
		return rv.FieldByIndex(plan.index), true
	}

	current := rv
	ptrSet := make(map[int]bool, len(plan.ptrIndices))
	for _, idx := range plan.ptrIndices {
		ptrSet[idx] = true
	}

	for i, idx := range plan.index {
		current = current.Field(idx)

		if ptrSet[i] {
			if current.IsNil() {
				return reflect.Value{}, false
			}
			current = current.Elem()
		}
	}

	return current, true
}
