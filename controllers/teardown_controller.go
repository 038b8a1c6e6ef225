package controllers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-logr/logr"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/tools/record"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"
	"sigs.k8s.io/controller-runtime/pkg/log"

	quenchv1alpha1 "github.com/anvil-platform/quench/api/v1alpha1"
	"github.com/anvil-platform/quench/internal/declaration"
	"github.com/anvil-platform/quench/internal/moniker"
	"github.com/anvil-platform/quench/internal/shutdown"
)

const (
	labelComponent  = "quench.platform/component"
	labelChild      = "quench.platform/child"
	labelCollection = "quench.platform/collection"
	labelInstance   = "quench.platform/instance"

	teardownFinalizer = "quench.platform/teardown"

	// RuntimeVersion is the platform runtime version advertised to manifest
	// minRuntime constraints.
	RuntimeVersion = "1.0.0"
)

// TeardownReconciler drives dependency-ordered teardown of a component's
// workloads when its ComponentManifest is deleted.
//
// Live instances are Deployments labeled with the component, the declared
// child or collection they realize, and their instance discriminator. On
// deletion the reconciler snapshots those workloads, derives the shutdown
// order from the manifest's offers, and deletes the workloads so that no
// provider goes down while a consumer of its capabilities is still running.
//
// RBAC:
// +kubebuilder:rbac:groups=quench.platform,resources=componentmanifests,verbs=get;list;watch;update;patch
// +kubebuilder:rbac:groups=quench.platform,resources=componentmanifests/status,verbs=get;update;patch
// +kubebuilder:rbac:groups=apps,resources=deployments,verbs=get;list;watch;delete
// +kubebuilder:rbac:groups="",resources=events,verbs=create;patch;update
type TeardownReconciler struct {
	client.Client
	Scheme   *runtime.Scheme
	Recorder record.EventRecorder
}

func (r *TeardownReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	quenchControllerReconcileTotal.WithLabelValues("Teardown").Inc()

	logger := log.FromContext(ctx).WithValues(
		"controller", "Teardown",
		"namespace", req.Namespace,
		"component", req.Name,
	)

	var manifest quenchv1alpha1.ComponentManifest
	if err := r.Get(ctx, req.NamespacedName, &manifest); err != nil {
		if client.IgnoreNotFound(err) == nil {
			return ctrl.Result{}, nil
		}
		quenchControllerReconcileErrorTotal.WithLabelValues("Teardown").Inc()
		return ctrl.Result{}, err
	}

	if manifest.DeletionTimestamp.IsZero() {
		return r.reconcileLive(ctx, &manifest, logger)
	}
	return r.reconcileDeleting(ctx, &manifest, logger)
}

// reconcileLive ensures the finalizer is present and the declaration is
// structurally sound, publishing the result on status.
func (r *TeardownReconciler) reconcileLive(ctx context.Context, manifest *quenchv1alpha1.ComponentManifest, logger logr.Logger) (ctrl.Result, error) {
	if controllerutil.AddFinalizer(manifest, teardownFinalizer) {
		if err := r.Update(ctx, manifest); err != nil {
			quenchControllerReconcileErrorTotal.WithLabelValues("Teardown").Inc()
			return ctrl.Result{}, err
		}
	}

	decl := declarationFromManifest(manifest)
	before := manifest.DeepCopy()
	if err := declaration.Validate(decl); err != nil {
		manifest.Status.Phase = "Invalid"
		manifest.Status.Message = err.Error()
		setManifestCondition(manifest, metav1.Condition{
			Type:    ManifestConditionDeclarationValid,
			Status:  metav1.ConditionFalse,
			Reason:  "ValidationFailed",
			Message: err.Error(),
		})
	} else if ok, cerr := declaration.RuntimeCompatible(decl, RuntimeVersion); cerr != nil || !ok {
		manifest.Status.Phase = "Invalid"
		manifest.Status.Message = fmt.Sprintf("minRuntime %q is not satisfied by runtime %s", decl.MinRuntime, RuntimeVersion)
		setManifestCondition(manifest, metav1.Condition{
			Type:    ManifestConditionDeclarationValid,
			Status:  metav1.ConditionFalse,
			Reason:  "RuntimeIncompatible",
			Message: manifest.Status.Message,
		})
	} else {
		manifest.Status.Phase = "Ready"
		manifest.Status.Message = ""
		setManifestCondition(manifest, metav1.Condition{
			Type:   ManifestConditionDeclarationValid,
			Status: metav1.ConditionTrue,
			Reason: "Validated",
		})
	}

	if err := r.Status().Patch(ctx, manifest, client.MergeFrom(before)); err != nil {
		quenchControllerReconcileErrorTotal.WithLabelValues("Teardown").Inc()
		return ctrl.Result{}, err
	}
	return ctrl.Result{}, nil
}

// reconcileDeleting tears down the component's workloads in dependency order
// and then releases the finalizer.
func (r *TeardownReconciler) reconcileDeleting(ctx context.Context, manifest *quenchv1alpha1.ComponentManifest, logger logr.Logger) (ctrl.Result, error) {
	if !controllerutil.ContainsFinalizer(manifest, teardownFinalizer) {
		return ctrl.Result{}, nil
	}
	logger.Info("tearing down component")

	component := &shutdown.Component{
		ID:   manifest.Name,
		Decl: declarationFromManifest(manifest),
		Live: &deploymentSnapshot{
			reader:    r.Client,
			namespace: manifest.Namespace,
			component: manifest.Name,
		},
		Stopper: &deploymentStopper{
			client:    r.Client,
			namespace: manifest.Namespace,
			component: manifest.Name,
		},
		Self:   &selfWorkloadStopper{client: r.Client, manifest: manifest},
		Events: &recorderSink{recorder: r.Recorder, object: manifest},
		Log:    logger,
	}

	start := time.Now()
	if err := component.Shutdown(ctx); err != nil {
		quenchControllerReconcileErrorTotal.WithLabelValues("Teardown").Inc()

		reason := "StopFailed"
		var malformed *shutdown.MalformedDeclarationError
		var cycle *shutdown.CycleError
		switch {
		case errors.As(err, &malformed):
			reason = "MalformedDeclaration"
		case errors.As(err, &cycle):
			reason = "DependencyCycle"
		}
		r.Recorder.Event(manifest, corev1.EventTypeWarning, reason, err.Error())

		before := manifest.DeepCopy()
		setManifestCondition(manifest, metav1.Condition{
			Type:    ManifestConditionTornDown,
			Status:  metav1.ConditionFalse,
			Reason:  reason,
			Message: err.Error(),
		})
		if perr := r.Status().Patch(ctx, manifest, client.MergeFrom(before)); perr != nil {
			logger.Error(perr, "failed to patch teardown status")
		}
		// The live set may have changed by the next attempt; requeue with
		// backoff rather than giving up or crashing the manager.
		return ctrl.Result{}, err
	}
	teardownDuration.Observe(time.Since(start).Seconds())

	if controllerutil.RemoveFinalizer(manifest, teardownFinalizer) {
		if err := r.Update(ctx, manifest); err != nil {
			quenchControllerReconcileErrorTotal.WithLabelValues("Teardown").Inc()
			return ctrl.Result{}, err
		}
	}
	logger.Info("component torn down")
	return ctrl.Result{}, nil
}

// deploymentSnapshot lists the component's live instances from workload
// labels, once per shutdown attempt.
type deploymentSnapshot struct {
	reader    client.Reader
	namespace string
	component string
}

func (s *deploymentSnapshot) ListInstances(ctx context.Context) ([]moniker.Moniker, error) {
	var deployments appsv1.DeploymentList
	if err := s.reader.List(ctx, &deployments,
		client.InNamespace(s.namespace),
		client.MatchingLabels{labelComponent: s.component},
	); err != nil {
		return nil, err
	}

	var live []moniker.Moniker
	for _, d := range deployments.Items {
		child := d.Labels[labelChild]
		if child == "" {
			// The component's own workload, not a child instance.
			continue
		}
		instance := d.Labels[labelInstance]
		if instance == "" {
			instance = d.Name
		}
		live = append(live, moniker.Moniker{
			Name:       child,
			Collection: d.Labels[labelCollection],
			InstanceID: instance,
		})
	}
	return live, nil
}

// deploymentStopper deletes the workload backing one instance. A workload
// already gone counts as stopped.
type deploymentStopper struct {
	client    client.Client
	namespace string
	component string
}

func (s *deploymentStopper) StopInstance(ctx context.Context, m moniker.Moniker) error {
	var deployments appsv1.DeploymentList
	if err := s.client.List(ctx, &deployments,
		client.InNamespace(s.namespace),
		client.MatchingLabels{
			labelComponent: s.component,
			labelInstance:  m.InstanceID,
		},
	); err != nil {
		return err
	}
	for i := range deployments.Items {
		if err := s.client.Delete(ctx, &deployments.Items[i]); err != nil && client.IgnoreNotFound(err) != nil {
			return err
		}
	}
	return nil
}

// selfWorkloadStopper removes the component's own workload, if any. There is
// no deferred cleanup for Deployment-backed components.
type selfWorkloadStopper struct {
	client   client.Client
	manifest *quenchv1alpha1.ComponentManifest
}

func (s *selfWorkloadStopper) Stop(ctx context.Context) ([]shutdown.CleanupFunc, error) {
	var deployments appsv1.DeploymentList
	if err := s.client.List(ctx, &deployments,
		client.InNamespace(s.manifest.Namespace),
		client.MatchingLabels{labelComponent: s.manifest.Name},
	); err != nil {
		return nil, err
	}
	for i := range deployments.Items {
		if deployments.Items[i].Labels[labelChild] != "" {
			continue
		}
		if err := s.client.Delete(ctx, &deployments.Items[i]); err != nil && client.IgnoreNotFound(err) != nil {
			return nil, err
		}
	}
	return nil, nil
}

// recorderSink forwards lifecycle notifications to the event stream.
type recorderSink struct {
	recorder record.EventRecorder
	object   *quenchv1alpha1.ComponentManifest
}

func (s *recorderSink) ComponentStopped(id string) {
	s.recorder.Event(s.object, corev1.EventTypeNormal, "ComponentStopped", fmt.Sprintf("component %s stopped", id))
}

func (r *TeardownReconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&quenchv1alpha1.ComponentManifest{}).
		Complete(r)
}
