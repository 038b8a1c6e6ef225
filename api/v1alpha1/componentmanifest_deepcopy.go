package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
)

// DeepCopyInto copies the receiver, writing into out. in must be non-nil.
func (in *ComponentManifest) DeepCopyInto(out *ComponentManifest) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ObjectMeta.DeepCopyInto(&out.ObjectMeta)
	in.Spec.DeepCopyInto(&out.Spec)
	in.Status.DeepCopyInto(&out.Status)
}

// DeepCopy copies the receiver, creating a new ComponentManifest.
func (in *ComponentManifest) DeepCopy() *ComponentManifest {
	if in == nil {
		return nil
	}
	out := new(ComponentManifest)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyObject copies the receiver, creating a new runtime.Object.
func (in *ComponentManifest) DeepCopyObject() runtime.Object {
	if c := in.DeepCopy(); c != nil {
		return c
	}
	return nil
}

// DeepCopyInto copies the receiver, writing into out. in must be non-nil.
func (in *ComponentManifestSpec) DeepCopyInto(out *ComponentManifestSpec) {
	*out = *in
	if in.Children != nil {
		out.Children = make([]ChildDecl, len(in.Children))
		copy(out.Children, in.Children)
	}
	if in.Collections != nil {
		out.Collections = make([]CollectionDecl, len(in.Collections))
		copy(out.Collections, in.Collections)
	}
	if in.Offers != nil {
		out.Offers = make([]OfferDecl, len(in.Offers))
		copy(out.Offers, in.Offers)
	}
	if in.Storage != nil {
		out.Storage = make([]StorageDecl, len(in.Storage))
		copy(out.Storage, in.Storage)
	}
}

// DeepCopy copies the receiver, creating a new ComponentManifestSpec.
func (in *ComponentManifestSpec) DeepCopy() *ComponentManifestSpec {
	if in == nil {
		return nil
	}
	out := new(ComponentManifestSpec)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto copies the receiver, writing into out. in must be non-nil.
func (in *ComponentManifestStatus) DeepCopyInto(out *ComponentManifestStatus) {
	*out = *in
	if in.Conditions != nil {
		out.Conditions = make([]metav1.Condition, len(in.Conditions))
		for i := range in.Conditions {
			in.Conditions[i].DeepCopyInto(&out.Conditions[i])
		}
	}
}

// DeepCopy copies the receiver, creating a new ComponentManifestStatus.
func (in *ComponentManifestStatus) DeepCopy() *ComponentManifestStatus {
	if in == nil {
		return nil
	}
	out := new(ComponentManifestStatus)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto copies the receiver, writing into out. in must be non-nil.
func (in *ComponentManifestList) DeepCopyInto(out *ComponentManifestList) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ListMeta.DeepCopyInto(&out.ListMeta)
	if in.Items != nil {
		out.Items = make([]ComponentManifest, len(in.Items))
		for i := range in.Items {
			in.Items[i].DeepCopyInto(&out.Items[i])
		}
	}
}

// DeepCopy copies the receiver, creating a new ComponentManifestList.
func (in *ComponentManifestList) DeepCopy() *ComponentManifestList {
	if in == nil {
		return nil
	}
	out := new(ComponentManifestList)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyObject copies the receiver, creating a new runtime.Object.
func (in *ComponentManifestList) DeepCopyObject() runtime.Object {
	if c := in.DeepCopy(); c != nil {
		return c
	}
	return nil
}
